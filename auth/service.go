package auth

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"kitabdunyasi/bonus"
	"kitabdunyasi/globals"
	"kitabdunyasi/middleware"
	"kitabdunyasi/models"
	"kitabdunyasi/store"
	"kitabdunyasi/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

var (
	ErrAuthFailed = errors.New("auth: invalid email or password")
	ErrEmailTaken = errors.New("auth: email already registered")
	ErrWeakSecret = errors.New("auth: password shorter than 6 characters")
)

// Admin back-office credentials. A fixed check, deliberately demo-grade.
var (
	adminUser = envOr("ADMIN_USER", "admin")
	adminPass = envOr("ADMIN_PASS", "admin123")
)

type Service struct {
	st    *store.Store
	bonus *bonus.Service
}

func NewService(st *store.Store, bonusSvc *bonus.Service) *Service {
	return &Service{st: st, bonus: bonusSvc}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account, credits the welcome bonus through the
// ledger and establishes the session.
func (s *Service) Register(in RegisterInput) (models.Session, error) {
	if len(in.Password) < 6 {
		return models.Session{}, ErrWeakSecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		ID:           newUserID(),
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Password:     string(hashed),
		RegisteredAt: time.Now(),
		BonusHistory: []models.BonusTransaction{},
		Orders:       []models.Order{},
		Settings:     models.NotificationSettings{Email: true, Orders: true},
	}

	var sess models.Session
	err = s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, u := range users {
			if strings.EqualFold(u.Email, user.Email) {
				return ErrEmailTaken
			}
		}

		users = append(users, user)
		if err := tx.SaveUsers(users); err != nil {
			return err
		}
		if err := bonus.Credit(tx, user.ID, bonus.WelcomeBonus, bonus.WelcomeType, ""); err != nil {
			return err
		}

		sess = models.Session{
			UserID:       user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Bonus:        bonus.WelcomeBonus,
			RegisteredAt: user.RegisteredAt,
		}
		return tx.SaveSession(sess)
	})
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

// Login checks the stored credentials and persists the session projection.
func (s *Service) Login(email, password string) (models.Session, error) {
	var sess models.Session
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		users, err := tx.Users()
		if err != nil {
			return err
		}
		for _, u := range users {
			if !strings.EqualFold(u.Email, email) {
				continue
			}
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
				return ErrAuthFailed
			}
			sess = models.Session{
				UserID:       u.ID,
				Name:         u.Name,
				Email:        u.Email,
				Bonus:        u.Bonus,
				RegisteredAt: u.RegisteredAt,
			}
			return tx.SaveSession(sess)
		}
		return ErrAuthFailed
	})
	if err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (s *Service) Logout() error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return tx.ClearSession()
	})
}

// AdminLogin checks the fixed back-office credentials.
func (s *Service) AdminLogin(username, password string) (models.AdminSession, error) {
	if username != adminUser || password != adminPass {
		return models.AdminSession{}, ErrAuthFailed
	}

	sess := models.AdminSession{
		ID:       "admin",
		Username: username,
		Role:     "admin",
		LoginAt:  time.Now(),
	}
	err := s.st.RunExclusive(func(tx *store.Tx) error {
		return tx.SaveAdminSession(sess)
	})
	if err != nil {
		return models.AdminSession{}, err
	}
	return sess, nil
}

func (s *Service) AdminLogout() error {
	return s.st.RunExclusive(func(tx *store.Tx) error {
		return tx.ClearAdminSession()
	})
}

// Token signs a JWT for an authenticated session.
func Token(userID, name, role string) (string, error) {
	claims := &middleware.Claims{
		Name:   name,
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func newUserID() string {
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), strings.ToLower(utils.GenerateRandomString(9)))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
