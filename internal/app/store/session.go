/*
Package store implements the local authoritative state store of the BloxClone platform.

This file contains the session and directory transitions: login, signup,
logout, profile edits, and the administrative force-login escape hatch.
*/
package store

import (
	"context"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/errs"
)

const (
	// MinUsernameLength and MaxUsernameLength bound signup usernames.
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

// Login authenticates a username and makes it the active session.
//
// The reserved owner identity requires an exact password match. Any other
// username succeeds iff it exists in the directory and is not banned; no
// password is checked on that path. Regular accounts are deliberately
// passwordless, the credential only gates the owner.
func (s *Store) Login(ctx context.Context, username, password string) (*platform.User, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if username == s.ownerUsername {
		if bcrypt.CompareHashAndPassword(s.ownerHash, []byte(password)) != nil {
			s.logger.Warn().Str("username", username).Msg("Owner login rejected: password mismatch.")
			return nil, errs.NewError(errs.ErrOwnerPasswordInvalid)
		}

		owner, ok := s.directory[s.ownerUsername]
		if !ok {
			owner = platform.OwnerUser()
			owner.Username = s.ownerUsername
		}

		s.session = owner
		s.persistSessionLocked(ctx)
		s.logger.Info().Str("username", username).Msg("Owner signed in.")
		return owner.Clone(), nil
	}

	existing, ok := s.directory[username]
	if !ok {
		return nil, errs.NewError(errs.ErrUserNotFound)
	}

	if existing.IsBanned {
		s.logger.Warn().Str("username", username).Msg("Login rejected: account banned.")
		return nil, errs.NewError(errs.ErrAccountBanned, existing.BanReason)
	}

	s.session = existing
	s.persistSessionLocked(ctx)
	s.logger.Info().Str("username", username).Msg("User signed in.")
	return existing.Clone(), nil
}

// Signup creates a fresh zero-balance account and makes it the active
// session. The reserved owner name is rejected case-insensitively.
func (s *Store) Signup(ctx context.Context, username, password string) (*platform.User, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if length := utf8.RuneCountInString(username); length < MinUsernameLength || length > MaxUsernameLength {
		return nil, errs.NewError(errs.ErrInvalidUsername)
	}

	if strings.EqualFold(username, s.ownerUsername) {
		return nil, errs.NewError(errs.ErrReservedUsername)
	}

	if _, exists := s.directory[username]; exists {
		return nil, errs.NewError(errs.ErrUsernameTaken)
	}

	newUser := platform.NewUser(username)
	s.directory[username] = newUser
	s.session = newUser
	s.persistSessionLocked(ctx)

	s.logger.Info().Str("username", username).Msg("Account created.")
	return newUser.Clone(), nil
}

// Logout clears the active session. The directory entry survives.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	s.logger.Info().Str("username", s.session.Username).Msg("User signed out.")
	s.session = nil
	s.persistSessionLocked(ctx)
}

// ForceLogin sets the active session directly to the directory record for
// username, synthesizing a fresh zero-balance record when none exists.
//
// No authorization check happens here: gating belongs to the caller. The
// store deliberately performs none, matching the documented trust boundary.
func (s *Store) ForceLogin(ctx context.Context, username string) *platform.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.directory[username]
	if !ok {
		target = platform.NewUser(username)
		s.directory[username] = target
	}

	s.session = target
	s.persistSessionLocked(ctx)

	s.logger.Info().Str("username", username).Bool("synthesized", !ok).Msg("Force login applied.")
	return target.Clone()
}

// UpdateProfile edits the active session's username and status.
//
// A rename persists the record under the new key and leaves the old directory
// entry behind as a pre-edit snapshot; history under the previous key is
// never rewritten.
func (s *Store) UpdateProfile(ctx context.Context, username string, status platform.UserStatus) (*platform.User, *errs.CustomError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, errs.NewError(errs.ErrNotSignedIn)
	}

	if length := utf8.RuneCountInString(username); length < MinUsernameLength || length > MaxUsernameLength {
		return nil, errs.NewError(errs.ErrInvalidUsername)
	}

	// Renaming onto the reserved owner identity would overwrite the owner's
	// directory record and pass the owner gate. Only the owner may keep the
	// reserved name.
	if strings.EqualFold(username, s.ownerUsername) && s.session.Username != s.ownerUsername {
		return nil, errs.NewError(errs.ErrReservedUsername)
	}

	switch status {
	case platform.StatusOnline, platform.StatusOffline, platform.StatusBusy:
	default:
		return nil, errs.NewError(errs.ErrInvalidParams)
	}

	if username != s.session.Username {
		// Freeze the old entry so the rename does not rewrite history under
		// the previous key.
		old := s.session.Clone()
		s.directory[old.Username] = old
		s.session.Username = username
	}

	s.session.Status = status
	s.persistSessionLocked(ctx)

	return s.session.Clone(), nil
}
