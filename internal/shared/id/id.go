// Package id provides identifier generation for loader sessions.
//
// Sessions get prefixed ULIDs so log lines from one game session sort by
// start time. Individual toggles get random UUIDs since they only need to be
// unique within a session's log stream.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// SessionID identifies one loader session
type SessionID string

// OperationID identifies one toggle within a session
type OperationID string

// SessionPrefix tags session identifiers
const SessionPrefix = "sess"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a new ULID generator
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewSessionID generates a new session ID
func NewSessionID() SessionID {
	return SessionID(Default().GenerateWithPrefix(SessionPrefix))
}

// NewOperationID generates a new toggle operation ID
func NewOperationID() OperationID {
	return OperationID(uuid.NewString())
}

func (id SessionID) String() string   { return string(id) }
func (id OperationID) String() string { return string(id) }

// Started extracts the creation time of a session ID
func (id SessionID) Started() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(id), SessionPrefix+"_")
	if !ok {
		return time.Time{}, fmt.Errorf("session id %q has no %s prefix", id, SessionPrefix)
	}
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("session id %q: %w", id, err)
	}
	return ulid.Time(parsed.Time()), nil
}
