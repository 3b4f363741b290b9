package interfaces

import "context"

// ICredentialDirectory resolves the expected signature-token hash for a
// contract. The hashes are owned by an external credential collaborator
// and consumed read-only by the signature flow.
//
// required=true means the contract's configuration mandates a token: a
// sign attempt without one must be refused. When no expectation exists
// (hash empty, required false) a tokenless signature is treated as
// internally authorized.

type ICredentialDirectory interface {
	ExpectedTokenHash(ctx context.Context, contractID string) (hash string, required bool, err error)
}
