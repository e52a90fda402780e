package redis

import "fmt"

// Cache key patterns.
const (
	KeyBallotResults = "elections:ballot:%d:results"
	KeyMemberVoted   = "elections:member:%d:ballot:%d:voted"
)

// KeyBuilder provides environment-aware Redis key building so staging and
// production can share one Redis instance.
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a key builder with an environment-based prefix.
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{prefix: prefix}
}

// BuildKey constructs a Redis key with the environment prefix.
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix.
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyBallotResults is the cached tally for one ballot.
func (kb *KeyBuilder) KeyBallotResults(ballotID int) string {
	return kb.BuildKey(fmt.Sprintf(KeyBallotResults, ballotID))
}

// KeyMemberVoted marks that a member already voted on a ballot.
func (kb *KeyBuilder) KeyMemberVoted(memberID, ballotID int) string {
	return kb.BuildKey(fmt.Sprintf(KeyMemberVoted, memberID, ballotID))
}

// KeyCustom builds an arbitrary prefixed key.
func (kb *KeyBuilder) KeyCustom(pattern string, args ...interface{}) string {
	return kb.BuildKey(fmt.Sprintf(pattern, args...))
}
