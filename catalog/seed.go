package catalog

import (
	"kitabdunyasi/models"
	"kitabdunyasi/store"
)

var sampleBooks = []models.Book{
	{
		ID: 1, Title: "Çılğın Türk", Author: "Banine", Category: models.CategoryRoman,
		Price: 15.99, OriginalPrice: 19.99,
		Image:       "https://images.pexels.com/photos/1785493/pexels-photo-1785493.jpeg",
		Description: "Azərbaycanın məşhur yazıçısı Baninənin avtobioqrafik romanı.",
		Rating:      4.5, RatingCount: 128, Stock: 25, Featured: true,
	},
	{
		ID: 2, Title: "Koroğlu", Author: "Xalq yaradıcılığı", Category: models.CategoryTarixi,
		Price: 12.50, OriginalPrice: 16.00,
		Image:       "https://images.pexels.com/photos/1509534/pexels-photo-1509534.jpeg",
		Description: "Azərbaycan xalqının qəhrəmanlıq dastanı.",
		Rating:      4.8, RatingCount: 95, Stock: 18, Featured: true,
	},
	{
		ID: 3, Title: "Aşıq Qərib", Author: "Xalq yaradıcılığı", Category: models.CategoryPoeziya,
		Price: 10.75, OriginalPrice: 13.50,
		Image:       "https://images.pexels.com/photos/1543586/pexels-photo-1543586.jpeg",
		Description: "Azərbaycan folklor ədəbiyyatının şah əsəri.",
		Rating:      4.3, RatingCount: 76, Stock: 30, Featured: true,
	},
	{
		ID: 4, Title: "Dədə Qorqud", Author: "Xalq yaradıcılığı", Category: models.CategoryTarixi,
		Price: 18.25, OriginalPrice: 22.00,
		Image:       "https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg",
		Description: "Türk xalqlarının qədim dastanı.",
		Rating:      4.7, RatingCount: 142, Stock: 12, Featured: true,
	},
	{
		ID: 5, Title: "Bir Gəncin Xatirələri", Author: "Yusif Vəzir Çəmənzəminli", Category: models.CategoryRoman,
		Price: 14.90,
		Image:       "https://images.pexels.com/photos/1426674/pexels-photo-1426674.jpeg",
		Description: "XX əsr Azərbaycan ədəbiyyatının klassik əsəri.",
		Rating:      4.4, RatingCount: 89, Stock: 22,
	},
	{
		ID: 6, Title: "Əli və Nino", Author: "Qurban Səid", Category: models.CategoryRoman,
		Price: 16.40, OriginalPrice: 20.00,
		Image:       "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg",
		Description: "Qafqazda keçən məşhur məhəbbət romanı.",
		Rating:      4.9, RatingCount: 215, Stock: 35,
	},
	{
		ID: 7, Title: "Yeddi Gözəl", Author: "Nizami Gəncəvi", Category: models.CategoryPoeziya,
		Price: 13.80,
		Image:       "https://images.pexels.com/photos/1130980/pexels-photo-1130980.jpeg",
		Description: "Nizami Gəncəvinin \"Xəmsə\"sinə daxil olan poeması.",
		Rating:      4.6, RatingCount: 104, Stock: 16,
	},
	{
		ID: 8, Title: "Sevil", Author: "Cəfər Cabbarlı", Category: models.CategoryDram,
		Price: 9.90,
		Image:       "https://images.pexels.com/photos/46274/pexels-photo-46274.jpeg",
		Description: "Cəfər Cabbarlının məşhur dramı.",
		Rating:      4.2, RatingCount: 61, Stock: 20,
	},
}

// Seed writes the sample catalog, but only if no books collection exists
// yet. An admin-emptied catalog stays empty.
func Seed(st *store.Store) error {
	return st.RunExclusive(func(tx *store.Tx) error {
		seeded, err := tx.HasBooks()
		if err != nil {
			return err
		}
		if seeded {
			return nil
		}
		return tx.SaveBooks(sampleBooks)
	})
}
