package session

import (
	"errors"
	"time"

	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNoSession is returned when no session has been persisted yet.
var ErrNoSession = errors.New("no active session")

// Session is the operator state the browser kept in localStorage: both tokens,
// the role tag and permission flags from the login response, and the
// server-reported previous session timestamp.
type Session struct {
	AccessToken  string
	RefreshToken string
	Username     string
	UserType     models.UserType
	Permissions  models.Permissions
	LastSession  string
	SavedAt      time.Time
}

type sessionRecord struct {
	ID                   uint `gorm:"primaryKey"`
	AccessToken          string
	RefreshToken         string
	Username             string
	UserType             string
	CanManageProperties  bool
	CanAddUnits          bool
	CanEditUnits         bool
	CanDeleteUnits       bool
	CanViewFinancialData bool
	LastSession          string
	SavedAt              time.Time
}

func (sessionRecord) TableName() string { return "sessions" }

// Store persists the single operator session across console restarts.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open opens (or creates) the session database at path and migrates its schema.
func Open(path string, log *logrus.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Save replaces any persisted session with s.
func (s *Store) Save(sess Session) error {
	rec := sessionRecord{
		ID:                   1,
		AccessToken:          sess.AccessToken,
		RefreshToken:         sess.RefreshToken,
		Username:             sess.Username,
		UserType:             string(sess.UserType),
		CanManageProperties:  sess.Permissions.CanManageProperties,
		CanAddUnits:          sess.Permissions.CanAddUnits,
		CanEditUnits:         sess.Permissions.CanEditUnits,
		CanDeleteUnits:       sess.Permissions.CanDeleteUnits,
		CanViewFinancialData: sess.Permissions.CanViewFinancialData,
		LastSession:          sess.LastSession,
		SavedAt:              time.Now(),
	}
	if err := s.db.Save(&rec).Error; err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{
		"username":  sess.Username,
		"user_type": sess.UserType,
	}).Info("Session saved")
	return nil
}

// Current returns the persisted session, or ErrNoSession.
func (s *Store) Current() (*Session, error) {
	var rec sessionRecord
	err := s.db.First(&rec, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return &Session{
		AccessToken:  rec.AccessToken,
		RefreshToken: rec.RefreshToken,
		Username:     rec.Username,
		UserType:     models.UserType(rec.UserType),
		Permissions: models.Permissions{
			CanManageProperties:  rec.CanManageProperties,
			CanAddUnits:          rec.CanAddUnits,
			CanEditUnits:         rec.CanEditUnits,
			CanDeleteUnits:       rec.CanDeleteUnits,
			CanViewFinancialData: rec.CanViewFinancialData,
		},
		LastSession: rec.LastSession,
		SavedAt:     rec.SavedAt,
	}, nil
}

// Clear wipes the persisted session. Safe to call when none exists.
func (s *Store) Clear() error {
	if err := s.db.Delete(&sessionRecord{}, 1).Error; err != nil {
		return err
	}
	s.log.Info("Session cleared")
	return nil
}

// AccessToken returns the stored bearer token, or "" when logged out.
func (s *Store) AccessToken() string {
	sess, err := s.Current()
	if err != nil {
		return ""
	}
	return sess.AccessToken
}

// IsAuthenticated reports whether a usable access token is stored. A token
// whose exp claim has passed counts as absent; tokens without parseable
// claims are given the benefit of the doubt and left for the server to reject.
func (s *Store) IsAuthenticated() bool {
	token := s.AccessToken()
	if token == "" {
		return false
	}
	exp, ok := tokenExpiry(token)
	if !ok {
		return true
	}
	return exp.After(time.Now())
}

// Invalidate is the single 401 hook: any unauthorized response from the
// resource client lands here and drops the session.
func (s *Store) Invalidate() {
	s.log.Warn("Unauthorized response from API, invalidating session")
	if err := s.Clear(); err != nil {
		s.log.WithError(err).Error("Failed to clear session")
	}
}

// tokenExpiry reads the exp claim without verifying the signature. The remote
// API holds the signing secret; locally the claim is only a hint to avoid
// dispatching requests that will bounce with a 401 anyway.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
