// Package state is the collaborator boundary of the SDK: the injected
// transport, the shared facade the models issue requests through, and the
// handles and entities referenced across packages.
package state

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aura-chat/guildsdk/config"
	"github.com/aura-chat/guildsdk/pkg/snowflake"
	"github.com/aura-chat/guildsdk/wire"
)

// DefaultVoterPageSize is the server's page cap for voter listings.
const DefaultVoterPageSize = 100

// Transport is the injected HTTP collaborator. Implementations own auth,
// rate limiting, retries and timeouts; this layer issues one call per
// logical request and surfaces failures unchanged.
type Transport interface {
	GetMemberVerification(ctx context.Context, guildID snowflake.ID) (wire.ScreeningForm, error)
	UpdateMemberVerification(ctx context.Context, guildID snowflake.ID, changes wire.ScreeningFormUpdate) (wire.ScreeningForm, error)
	GetAnswerVoters(ctx context.Context, channelID, messageID snowflake.ID, answerID, limit int, after snowflake.ID) ([]wire.User, error)
	ExpirePoll(ctx context.Context, channelID, messageID snowflake.ID) error
}

// State carries the transport and ambient concerns shared by every model.
type State struct {
	http          Transport
	log           *zap.Logger
	voterPageSize int
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the structured logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *State) { s.log = log }
}

// WithVoterPageSize lowers the voter page size below the server cap.
func WithVoterPageSize(n int) Option {
	return func(s *State) {
		if n > 0 && n <= DefaultVoterPageSize {
			s.voterPageSize = n
		}
	}
}

// New creates a State around the injected transport.
func New(http Transport, opts ...Option) *State {
	s := &State{
		http:          http,
		log:           zap.NewNop(),
		voterPageSize: DefaultVoterPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig creates a State configured from the environment-backed config.
func FromConfig(http Transport, cfg *config.Config) *State {
	return New(http,
		WithLogger(NewLogger(cfg.LogLevel)),
		WithVoterPageSize(cfg.VoterPageSize),
	)
}

// Logger returns the configured logger.
func (s *State) Logger() *zap.Logger { return s.log }

// VoterPageSize returns the per-request cap for voter pagination.
func (s *State) VoterPageSize() int { return s.voterPageSize }

// MemberVerification fetches a guild's screening form payload.
func (s *State) MemberVerification(ctx context.Context, guildID snowflake.ID) (wire.ScreeningForm, error) {
	s.log.Debug("get member verification", zap.Stringer("guild_id", guildID))
	return s.http.GetMemberVerification(ctx, guildID)
}

// UpdateMemberVerification submits a screening form change-set.
func (s *State) UpdateMemberVerification(ctx context.Context, guildID snowflake.ID, changes wire.ScreeningFormUpdate) (wire.ScreeningForm, error) {
	s.log.Debug("update member verification",
		zap.Stringer("guild_id", guildID),
		zap.Bool("has_fields", changes.FormFields != nil),
	)
	return s.http.UpdateMemberVerification(ctx, guildID, changes)
}

// AnswerVoters fetches one page of voters for a poll answer.
func (s *State) AnswerVoters(ctx context.Context, channelID, messageID snowflake.ID, answerID, limit int, after snowflake.ID) ([]wire.User, error) {
	s.log.Debug("get answer voters",
		zap.Stringer("channel_id", channelID),
		zap.Stringer("message_id", messageID),
		zap.Int("answer_id", answerID),
		zap.Int("limit", limit),
	)
	return s.http.GetAnswerVoters(ctx, channelID, messageID, answerID, limit, after)
}

// ExpirePoll asks the server to end a poll immediately.
func (s *State) ExpirePoll(ctx context.Context, channelID, messageID snowflake.ID) error {
	s.log.Debug("expire poll",
		zap.Stringer("channel_id", channelID),
		zap.Stringer("message_id", messageID),
	)
	return s.http.ExpirePoll(ctx, channelID, messageID)
}

// NewLogger builds a production zap logger with ISO8601 timestamps at the
// given level (debug|info|warn|error); unknown levels fall back to info.
func NewLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, _ := cfg.Build()
	return logger
}
