package util

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidSession       = errors.New("invalid session token")
	ErrTestNotStarted       = errors.New("test not started")
	ErrTestIncomplete       = errors.New("not all questions have been answered")
	ErrTestAlreadyCompleted = errors.New("test already completed")
	ErrQuestionNotInTest    = errors.New("question is not part of the current test")
	ErrInvalidNavigation    = errors.New("invalid navigation action")
	ErrNoResult             = errors.New("no result available")
	ErrInvalidResult        = errors.New("invalid result")
	ErrArchetypeNotFound    = errors.New("archetype not found")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrMintingDisabled      = errors.New("nft minting is disabled")
	ErrAlreadyMinted        = errors.New("wallet already minted this result")
	ErrMintFailed           = errors.New("nft mint failed")
)
