package order_test

import (
	"fmt"
	"testing"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.UnknownStatus))
		assert.Equal(t, 1, int(order.Waiting))
		assert.Equal(t, 2, int(order.Ready))
		assert.Equal(t, 3, int(order.Accepted))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Waiting,
			order.Ready,
			order.Accepted,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject UnknownStatus", func(t *testing.T) {
		err := order.UnknownStatus.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "state is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid state")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid state", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Waiting, "Waiting"},
			{order.Ready, "Ready"},
			{order.Accepted, "Accepted"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.UnknownStatus,
			order.Status(-1),
			order.Status(6),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse storage tokens", func(t *testing.T) {
		testCases := []struct {
			token    string
			expected order.Status
		}{
			{"attesa", order.Waiting},
			{"pronto", order.Ready},
			{"accettato", order.Accepted},
			{"consegnato", order.Delivered},
			{"annullato", order.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %q", tc.token), func(t *testing.T) {
				status, err := order.ParseStatus(tc.token)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should parse English tokens", func(t *testing.T) {
		testCases := []struct {
			token    string
			expected order.Status
		}{
			{"waiting", order.Waiting},
			{"ready", order.Ready},
			{"accepted", order.Accepted},
			{"delivered", order.Delivered},
			{"cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %q", tc.token), func(t *testing.T) {
				status, err := order.ParseStatus(tc.token)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should ignore case and surrounding whitespace", func(t *testing.T) {
		testCases := []struct {
			token    string
			expected order.Status
		}{
			{"  attesa ", order.Waiting},
			{"PRONTO", order.Ready},
			{"Accettato", order.Accepted},
			{" Delivered\t", order.Delivered},
		}

		for _, tc := range testCases {
			status, err := order.ParseStatus(tc.token)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown tokens as recoverable errors", func(t *testing.T) {
		invalidTokens := []string{"", "unknown", "completed", "in attesa", "xyz"}

		for _, token := range invalidTokens {
			t.Run(fmt.Sprintf("should reject %q", token), func(t *testing.T) {
				status, err := order.ParseStatus(token)

				require.Error(t, err)
				assert.Equal(t, order.UnknownStatus, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid state token")
			})
		}
	})
}

func TestStatus_SQLToken(t *testing.T) {
	t.Run("should return storage token for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Waiting, "attesa"},
			{order.Ready, "pronto"},
			{order.Accepted, "accettato"},
			{order.Delivered, "consegnato"},
			{order.Cancelled, "annullato"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.SQLToken())
		}
	})

	t.Run("should round-trip every valid status through ParseStatus", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Waiting, order.Ready, order.Accepted, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.ParseStatus(status.SQLToken())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should panic for invalid statuses", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = order.UnknownStatus.SQLToken()
		})
		assert.Panics(t, func() {
			_ = order.Status(42).SQLToken()
		})
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Delivered and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should report other statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.Waiting.IsTerminal())
		assert.False(t, order.Ready.IsTerminal())
		assert.False(t, order.Accepted.IsTerminal())
		assert.False(t, order.UnknownStatus.IsTerminal())
	})
}

func TestStatus_MarkReady(t *testing.T) {
	t.Run("should allow transition from Waiting to Ready", func(t *testing.T) {
		newStatus, err := order.Waiting.MarkReady()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject transition from other statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.UnknownStatus,
			order.Ready,
			order.Accepted,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.MarkReady()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid state to become Ready", status))
			})
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should allow transition from Ready to Accepted", func(t *testing.T) {
		newStatus, err := order.Ready.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, newStatus)
	})

	t.Run("should reject transition from other statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.UnknownStatus,
			order.Waiting,
			order.Accepted,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Accept()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid state to become Accepted", status))
			})
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should allow transition from Accepted to Delivered", func(t *testing.T) {
		newStatus, err := order.Accepted.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject transition from other statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.UnknownStatus,
			order.Waiting,
			order.Ready,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject transition from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Deliver()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid state to become Delivered", status))
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow cancellation from any non-terminal status", func(t *testing.T) {
		cancellableStatuses := []order.Status{
			order.Waiting,
			order.Ready,
			order.Accepted,
		}

		for _, status := range cancellableStatuses {
			t.Run(fmt.Sprintf("should allow cancellation from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, newStatus)
			})
		}
	})

	t.Run("should reject cancellation of terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			t.Run(fmt.Sprintf("should reject cancellation from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid state to become Cancelled", status))
			})
		}
	})

	t.Run("should reject cancellation of invalid statuses", func(t *testing.T) {
		newStatus, err := order.UnknownStatus.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.Contains(t, err.Error(), "0 is not a valid state")
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the full happy-path workflow", func(t *testing.T) {
		// Waiting -> Ready -> Accepted -> Delivered
		status := order.Waiting

		status, err := status.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.Ready, status)

		status, err = status.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, status)

		status, err = status.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, status)
	})

	t.Run("should prevent skipping states", func(t *testing.T) {
		_, err := order.Waiting.Accept()
		require.Error(t, err)

		_, err = order.Waiting.Deliver()
		require.Error(t, err)

		_, err = order.Ready.Deliver()
		require.Error(t, err)
	})

	t.Run("should prevent any transition out of terminal states", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := terminal.MarkReady()
			require.Error(t, err)

			_, err = terminal.Accept()
			require.Error(t, err)

			_, err = terminal.Deliver()
			require.Error(t, err)

			_, err = terminal.Cancel()
			require.Error(t, err)
		}
	})
}
