package store

import "kitabdunyasi/models"

// Typed accessors over the named collections. The Tx variants run inside
// RunExclusive; the Store variants take the lock for a single operation.

func (tx *Tx) Books() ([]models.Book, error) {
	var books []models.Book
	err := tx.get(ColBooks, &books)
	return books, err
}

func (tx *Tx) SaveBooks(books []models.Book) error {
	return tx.put(ColBooks, books)
}

func (tx *Tx) HasBooks() (bool, error) {
	return tx.exists(ColBooks)
}

func (tx *Tx) Users() ([]models.User, error) {
	var users []models.User
	err := tx.get(ColUsers, &users)
	return users, err
}

func (tx *Tx) SaveUsers(users []models.User) error {
	return tx.put(ColUsers, users)
}

func (tx *Tx) Cart() ([]models.CartEntry, error) {
	var cart []models.CartEntry
	err := tx.get(ColCart, &cart)
	return cart, err
}

func (tx *Tx) SaveCart(cart []models.CartEntry) error {
	return tx.put(ColCart, cart)
}

func (tx *Tx) Favorites() ([]int, error) {
	var favs []int
	err := tx.get(ColFavorites, &favs)
	return favs, err
}

func (tx *Tx) SaveFavorites(favs []int) error {
	return tx.put(ColFavorites, favs)
}

func (tx *Tx) Orders() ([]models.Order, error) {
	var orders []models.Order
	err := tx.get(ColOrders, &orders)
	return orders, err
}

func (tx *Tx) SaveOrders(orders []models.Order) error {
	return tx.put(ColOrders, orders)
}

func (tx *Tx) Session() (*models.Session, error) {
	var sess *models.Session
	err := tx.get(ColSession, &sess)
	return sess, err
}

func (tx *Tx) SaveSession(sess models.Session) error {
	return tx.put(ColSession, sess)
}

func (tx *Tx) ClearSession() error {
	return tx.del(ColSession)
}

func (tx *Tx) AdminSession() (*models.AdminSession, error) {
	var sess *models.AdminSession
	err := tx.get(ColAdminSession, &sess)
	return sess, err
}

func (tx *Tx) SaveAdminSession(sess models.AdminSession) error {
	return tx.put(ColAdminSession, sess)
}

func (tx *Tx) ClearAdminSession() error {
	return tx.del(ColAdminSession)
}

func (tx *Tx) Draft() (*models.CheckoutDraft, error) {
	var draft *models.CheckoutDraft
	err := tx.get(ColDraft, &draft)
	return draft, err
}

func (tx *Tx) SaveDraft(draft models.CheckoutDraft) error {
	return tx.put(ColDraft, draft)
}

func (tx *Tx) ClearDraft() error {
	return tx.del(ColDraft)
}

// Single-operation convenience wrappers.

func (s *Store) Books() (books []models.Book, err error) {
	err = s.RunExclusive(func(tx *Tx) error { books, err = tx.Books(); return err })
	return
}

func (s *Store) Users() (users []models.User, err error) {
	err = s.RunExclusive(func(tx *Tx) error { users, err = tx.Users(); return err })
	return
}

func (s *Store) Cart() (cart []models.CartEntry, err error) {
	err = s.RunExclusive(func(tx *Tx) error { cart, err = tx.Cart(); return err })
	return
}

func (s *Store) Favorites() (favs []int, err error) {
	err = s.RunExclusive(func(tx *Tx) error { favs, err = tx.Favorites(); return err })
	return
}

func (s *Store) Orders() (orders []models.Order, err error) {
	err = s.RunExclusive(func(tx *Tx) error { orders, err = tx.Orders(); return err })
	return
}

func (s *Store) Session() (sess *models.Session, err error) {
	err = s.RunExclusive(func(tx *Tx) error { sess, err = tx.Session(); return err })
	return
}

func (s *Store) Draft() (draft *models.CheckoutDraft, err error) {
	err = s.RunExclusive(func(tx *Tx) error { draft, err = tx.Draft(); return err })
	return
}
