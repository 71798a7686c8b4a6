package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeUserID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"long id keeps edges", "01HV3Q4J8K9M2N3P4Q5R6S7T8U", "01****8U"},
		{"short id fully masked", "u1", "****"},
		{"boundary length fully masked", "abcd", "****"},
		{"empty", "", "****"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, sanitizeUserID(tt.in))
		})
	}
}

func TestGetChannel_FallsBackToSystem(t *testing.T) {
	logger, err := NewChanneledLogger(DefaultLoggerConfig())
	require.NoError(t, err)

	require.Equal(t, logger.System(), logger.GetChannel(Channel("nope")))
	require.Equal(t, logger.Session(), logger.GetChannel(ChannelSession))
}

func TestWithUserAndOperation(t *testing.T) {
	logger, err := NewChanneledLogger(DefaultLoggerConfig())
	require.NoError(t, err)

	require.NotNil(t, logger.WithUser(ChannelSession, "01HV3Q4J8K9M2N3P4Q5R6S7T8U"))
	require.NotNil(t, logger.WithOperation(ChannelState, "state-sweep"))
}
