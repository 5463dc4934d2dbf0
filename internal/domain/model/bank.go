package model

import (
	"errors"
	"fmt"
)

// BankState represents whether the bank is accepting work.
type BankState string

const (
	BankOpen BankState = "Open"
)

var ErrInvalidBankState = errors.New("invalid bank state")

func (s BankState) IsValid() bool {
	switch s {
	case BankOpen:
		return true
	default:
		return false
	}
}

func (s BankState) String() string {
	return string(s)
}

// ParseBankState converts s into a BankState.
func ParseBankState(s string) (BankState, error) {
	state := BankState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBankState, s)
	}
	return state, nil
}
