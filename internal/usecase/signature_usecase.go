package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"saude_conecta/internal/domain/entities"
	"saude_conecta/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContractNotApproved = errors.New("contract is not approved for signing")
	ErrAlreadySigned       = errors.New("contract already signed")
	ErrInvalidSignToken    = errors.New("invalid signature token")
	ErrSignTokenRequired   = errors.New("signature token required for this contract")
	ErrCredentialLookup    = errors.New("credential directory lookup failed")
)

// SignCommand is one request to perform the one-time terminal signing.

type SignCommand struct {
	ContractID      string
	Token           string
	ExpectedVersion int64
}

// ISignatureUseCase guards and performs signing. Signing is independent
// of the review chain but depends on its terminal approved state, and is
// strictly one-time: a second attempt is rejected, never silently
// accepted.

type ISignatureUseCase interface {
	Sign(ctx context.Context, cmd SignCommand) (entities.Contract, error)
}

type SignatureUseCase struct {
	store       interfaces.IContractStore
	credentials interfaces.ICredentialDirectory
	dispatcher  interfaces.INotificationDispatcher
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(store interfaces.IContractStore, credentials interfaces.ICredentialDirectory, dispatcher interfaces.INotificationDispatcher) *SignatureUseCase {
	return &SignatureUseCase{store: store, credentials: credentials, dispatcher: dispatcher}
}

func (u *SignatureUseCase) Sign(ctx context.Context, cmd SignCommand) (entities.Contract, error) {
	cmd.ContractID = strings.TrimSpace(cmd.ContractID)
	cmd.Token = strings.TrimSpace(cmd.Token)

	if cmd.ContractID == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	if cmd.ExpectedVersion < 1 {
		return entities.Contract{}, ErrInvalidExpectedVersion
	}

	c, err := u.store.GetByID(ctx, cmd.ContractID)
	if err != nil {
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	if c.Status != entities.ContractStatusApproved {
		log.Printf("[signature][usecase] sign refused contract_id=%s status=%s", c.ID, c.Status)
		return entities.Contract{}, ErrContractNotApproved
	}
	if c.IsSigned {
		return entities.Contract{}, ErrAlreadySigned
	}

	tokenHash, err := u.verifyToken(ctx, c.ID, cmd.Token)
	if err != nil {
		return entities.Contract{}, err
	}

	if c.Version != cmd.ExpectedVersion {
		return entities.Contract{}, interfaces.ErrVersionConflict
	}

	now := time.Now().UTC()

	updated := c
	updated.IsSigned = true
	updated.SignedAt = &now
	updated.SignatureTokenHash = tokenHash
	updated.Version = cmd.ExpectedVersion + 1
	updated.UpdatedAt = now

	rec := entities.ApprovalRecord{
		ID:               uuid.NewString(),
		ContractID:       c.ID,
		Step:             entities.StepSignature,
		Action:           entities.ActionSign,
		Notes:            "contract signed",
		ResultingStatus:  updated.Status,
		ResultingVersion: updated.Version,
		CreatedAt:        now,
	}

	committed, err := u.store.CommitTransition(ctx, updated, cmd.ExpectedVersion, rec)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			// Two concurrent sign attempts on the same version: exactly
			// one wins the CAS, the loser re-reads and sees is_signed.
			log.Printf("[signature][usecase] version conflict contract_id=%s expected=%d", c.ID, cmd.ExpectedVersion)
			return entities.Contract{}, err
		}
		return entities.Contract{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	log.Printf("[signature][usecase] contract signed contract_id=%s version=%d", committed.ID, committed.Version)

	if u.dispatcher != nil {
		if err := u.dispatcher.DispatchWorkflowAdvanced(ctx, entities.WorkflowEvent{
			ContractID: committed.ID,
			OldStatus:  entities.ContractStatusApproved,
			NewStatus:  committed.Status,
			Timestamp:  now,
		}); err != nil {
			log.Printf("[signature][usecase] notification dispatch failed contract_id=%s err=%v", committed.ID, err)
		}
	}

	return committed, nil
}

// verifyToken checks the supplied token against the expectation held by
// the credential collaborator and returns the hash to persist. Absence of
// a token is permitted only when the contract does not mandate one.
func (u *SignatureUseCase) verifyToken(ctx context.Context, contractID, token string) (string, error) {
	expectedHash := ""
	required := false

	if u.credentials != nil {
		var err error
		expectedHash, required, err = u.credentials.ExpectedTokenHash(ctx, contractID)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCredentialLookup, err)
		}
	}

	if token == "" {
		if required {
			return "", ErrSignTokenRequired
		}
		return "", nil
	}

	computed := HashSignToken(token)
	if expectedHash == "" || !hmac.Equal([]byte(computed), []byte(expectedHash)) {
		return "", ErrInvalidSignToken
	}
	return computed, nil
}

// HashSignToken is the canonical token digest shared with the credential
// collaborator: lowercase hex SHA-256 of the raw token.
func HashSignToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
