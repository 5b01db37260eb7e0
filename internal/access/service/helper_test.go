package service

import (
	"shopaccess/internal/access/resolver"
	"shopaccess/internal/access/wallet"
)

const testProofSecret = "service-test-secret"

// newTestService wires a Service around the shared mock store with a real
// resolver and verifier, the way main assembles it.
func newTestService(repo *MockStore, bootstrapIDs ...string) *Service {
	res := resolver.New(repo, repo, repo)
	ver := wallet.NewVerifier([]byte(testProofSecret))
	return NewService(repo, res, ver, bootstrapIDs, 0)
}
