package main

import (
	"bufio"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/KirkDiggler/roomease/internal/booking"
	mockbooking "github.com/KirkDiggler/roomease/internal/booking/mock"
	"github.com/KirkDiggler/roomease/internal/config"
	mockdice "github.com/KirkDiggler/roomease/internal/dice/mock"
	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
	"github.com/KirkDiggler/roomease/internal/services"
	mockuuid "github.com/KirkDiggler/roomease/internal/uuid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Dispatch(t *testing.T) {
	ctx := context.Background()
	snapshot := entities.Snapshot{{{ID: "101", Floor: 1, Index: 1}}}

	tests := []struct {
		name    string
		line    string
		setup   func(m *mockbooking.MockService)
		wantErr roomerr.Code
	}{
		{
			name: "book",
			line: "book 3",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestBooking(gomock.Any(), 3).Return(&entities.BookingResult{}, nil)
			},
		},
		{
			name:    "book with bad count",
			line:    "book many",
			setup:   func(m *mockbooking.MockService) {},
			wantErr: roomerr.CodeInvalidArgument,
		},
		{
			name: "pick surfaces service errors",
			line: "pick 101",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestSingleBook(gomock.Any(), "101").Return(nil, roomerr.AlreadyBooked("101"))
			},
			wantErr: roomerr.CodeAlreadyBooked,
		},
		{
			name: "unbook",
			line: "  UNBOOK 205 ",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestUnbook(gomock.Any(), "205").Return(nil)
			},
		},
		{
			name: "reset",
			line: "reset",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestReset(gomock.Any())
			},
		},
		{
			name: "random uses default",
			line: "random",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestRandomize(gomock.Any(), nil)
			},
		},
		{
			name: "random with probability",
			line: "random 0.75",
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().RequestRandomize(gomock.Any(), &booking.RandomizeInput{Probability: 0.75})
			},
		},
		{
			name: "import",
			line: `import [[{"id":"101","floor":1,"index":1,"booked":true}]]`,
			setup: func(m *mockbooking.MockService) {
				m.EXPECT().ImportSnapshot(gomock.Any(), entities.Snapshot{{{ID: "101", Floor: 1, Index: 1, Booked: true}}}).Return(nil)
			},
		},
		{
			name:    "import garbage",
			line:    "import [[",
			setup:   func(m *mockbooking.MockService) {},
			wantErr: roomerr.CodeInvalidSnapshot,
		},
		{
			name:    "unknown command",
			line:    "dance",
			setup:   func(m *mockbooking.MockService) {},
			wantErr: roomerr.CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mockbooking.NewMockService(ctrl)
			tt.setup(svc)
			svc.EXPECT().ExportSnapshot(gomock.Any()).Return(snapshot)
			svc.EXPECT().LastResult(gomock.Any()).Return(nil)

			resp := NewHandler(&HandlerConfig{BookingService: svc}).Handle(ctx, tt.line)

			assert.Equal(t, snapshot, resp.Grid)
			if tt.wantErr == "" {
				assert.Nil(t, resp.Error)
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func newRealHandler(t *testing.T) *Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	uuidGenerator := mockuuid.NewMockGenerator(ctrl)
	uuidGenerator.EXPECT().New().Return("booking-1").AnyTimes()

	provider := services.NewProvider(&services.ProviderConfig{
		Booking: config.BookingConfig{
			SessionID:            "cli",
			Layout:               entities.Layout{2, 2},
			OccupancyProbability: 0.3,
		},
		Roller:        mockdice.NewManualMockRoller(0.5),
		UUIDGenerator: uuidGenerator,
	})
	return NewHandler(&HandlerConfig{BookingService: provider.BookingService})
}

func TestRun_WritesOneResponsePerLine(t *testing.T) {
	input := strings.Join([]string{
		"book 2",
		"",
		"book 6",
		"stairs 202",
		"unbook 101",
		"quit",
		"book 1",
	}, "\n")

	var out strings.Builder
	require.NoError(t, run(context.Background(), newRealHandler(t), strings.NewReader(input), &out))

	var responses []Response
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		var resp Response
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
		responses = append(responses, resp)
	}
	require.Len(t, responses, 4)

	booked := responses[0]
	assert.Nil(t, booked.Error)
	require.NotNil(t, booked.Result)
	assert.Equal(t, []string{"101", "102"}, booked.Result.RoomIDs)
	assert.Equal(t, 1, booked.Result.TravelCost)
	assert.Equal(t, 2, booked.Grid.BookedCount())

	rejected := responses[1]
	require.NotNil(t, rejected.Error)
	assert.Equal(t, roomerr.CodeInvalidRequestCount, rejected.Error.Code)
	assert.Equal(t, float64(6), rejected.Error.Meta["count"])
	assert.Equal(t, 2, rejected.Grid.BookedCount())
	assert.NotNil(t, rejected.Result, "failed requests keep the last booking")

	stairs := responses[2]
	require.NotNil(t, stairs.StairsCost)
	assert.Equal(t, 3, *stairs.StairsCost)

	unbooked := responses[3]
	assert.Nil(t, unbooked.Error)
	assert.Nil(t, unbooked.Result)
	assert.Equal(t, 1, unbooked.Grid.BookedCount())
}

func TestRun_StopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	err := run(ctx, newRealHandler(t), strings.NewReader("state\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
