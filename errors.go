/*
 * errors.go, part of gomol.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chem

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of these,
// so callers can tell them apart with errors.Is.
var (
	ErrUnknownElement       = errors.New("unknown element")
	ErrInvalidAtom          = errors.New("invalid atom")
	ErrInvalidBond          = errors.New("invalid bond")
	ErrDuplicateAtomKey     = errors.New("duplicate atom key")
	ErrUnknownAtomReference = errors.New("bond references an unknown atom")
	ErrUnknownKey           = errors.New("unknown key")
	ErrLengthMismatch       = errors.New("symbols and coordinates differ in length")
	ErrInvalidElement       = errors.New("invalid element")
	ErrInvalidCoordinate    = errors.New("invalid coordinate")
	ErrInvalidCutoff        = errors.New("invalid bond cutoff")
	ErrIdentifier           = errors.New("identifier engine failure")
)

// CError is the error type returned by the chem package. Besides the message, it keeps
// the kind of failure (one of the Err* variables) and a "decoration" slice with the
// names of the functions the error went through.
type CError struct {
	msg   string
	kind  error
	cause error //the error from a collaborator that triggered this one, if any
	deco  []string
}

func newError(kind error, caller string, format string, args ...interface{}) *CError {
	err := &CError{kind: kind}
	err.msg = fmt.Sprintf("%s: %s", kind.Error(), fmt.Sprintf(format, args...))
	err.Decorate(caller)
	return err
}

func wrapError(kind, cause error, caller string, format string, args ...interface{}) *CError {
	err := newError(kind, caller, format, args...)
	err.cause = cause
	err.msg = err.msg + ": " + cause.Error()
	return err
}

// Error returns a string with an error message.
func (err *CError) Error() string { return err.msg }

// Unwrap returns the kind of the error and, if there is one, its cause.
func (err *CError) Unwrap() []error {
	if err.cause != nil {
		return []error{err.kind, err.cause}
	}
	return []error{err.kind}
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice. An empty dec just returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// errDecorate decorates err with the caller's name if it is a chem Error,
// and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
