package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"
)

var (
	ErrUserAlreadyExists  = errors.New("User, Email, Phone or NIC already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrMissingFields      = errors.New("All fields are required")
	ErrInvalidPhone       = errors.New("Invalid Sri Lankan Phone Number")
	ErrInvalidNIC         = errors.New("Invalid Sri Lankan NIC")
)

// Sri Lankan mobile numbers: optional 0 or 94 prefix, then 7 and eight
// digits. NICs: nine digits plus V/X, or the newer twelve-digit form.
var (
	phonePattern = regexp.MustCompile(`^(0|94)?[7][0-9]{8}$`)
	nicPattern   = regexp.MustCompile(`^([0-9]{9}[xXvV]|[0-9]{12})$`)
)

// SignupRequest carries the signup form fields.
type SignupRequest struct {
	Identifier string
	Username   string
	Email      string
	Phone      string
	NIC        string
	Password   string
}

// SignupUser validates the form, enforces identity uniqueness across
// identifier/email/phone/NIC and stores the account. Passwords are kept
// as-is; login is exact comparison.
func SignupUser(req SignupRequest) (*models.User, error) {
	if req.Identifier == "" || req.Password == "" || req.Email == "" || req.Phone == "" || req.NIC == "" {
		return nil, ErrMissingFields
	}
	if !phonePattern.MatchString(req.Phone) {
		return nil, ErrInvalidPhone
	}
	if !nicPattern.MatchString(req.NIC) {
		return nil, ErrInvalidNIC
	}

	var users []models.User
	database.DB.Load(database.ResourceUsers, &users)
	for i := range users {
		u := &users[i]
		if u.Identifier == req.Identifier ||
			(u.Email != "" && u.Email == req.Email) ||
			(u.Phone != "" && u.Phone == req.Phone) ||
			(u.NIC != "" && u.NIC == req.NIC) {
			return nil, ErrUserAlreadyExists
		}
	}

	user := models.User{
		Identifier: req.Identifier,
		Username:   req.Username,
		Email:      req.Email,
		Phone:      req.Phone,
		NIC:        req.NIC,
		Password:   req.Password,
		CreatedAt:  time.Now(),
	}
	users = append(users, user)
	if err := database.DB.Save(database.ResourceUsers, users); err != nil {
		return nil, err
	}

	LogAccountActivity(user.Identifier, "Account Created", nil)
	return &user, nil
}

// LoginUser matches the identifier against any of the stored identity fields
// (identifier, email, phone, username, NIC) plus an exact password match.
func LoginUser(identifier, password string) (*models.User, error) {
	var users []models.User
	database.DB.Load(database.ResourceUsers, &users)
	for i := range users {
		u := &users[i]
		if u.MatchesIdentifier(identifier) && u.Password == password {
			LogAccountActivity(u.Identifier, "User Login", nil)
			return u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
