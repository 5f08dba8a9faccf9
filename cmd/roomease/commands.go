package main

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/roomease/internal/allocation"
	"github.com/KirkDiggler/roomease/internal/booking"
	"github.com/KirkDiggler/roomease/internal/entities"
	roomerr "github.com/KirkDiggler/roomease/internal/errors"
)

// Response is written as one JSON line per command
type Response struct {
	Grid       entities.Snapshot       `json:"grid"`
	Result     *entities.BookingResult `json:"result"`
	StairsCost *int                    `json:"stairs_cost,omitempty"`
	Error      *ErrorBody              `json:"error"`
}

// ErrorBody carries the error kind so callers can pick their own wording
type ErrorBody struct {
	Code    roomerr.Code   `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// HandlerConfig holds configuration for the command handler
type HandlerConfig struct {
	BookingService booking.Service
}

// Handler turns command lines into booking service calls
type Handler struct {
	bookingService booking.Service
}

// NewHandler creates a new command handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil || cfg.BookingService == nil {
		panic("booking service is required")
	}
	return &Handler{bookingService: cfg.BookingService}
}

// Handle runs one command line and reports the resulting state
func (h *Handler) Handle(ctx context.Context, line string) *Response {
	resp := &Response{}
	if err := h.dispatch(ctx, strings.TrimSpace(line), resp); err != nil {
		resp.Error = toErrorBody(err)
	}

	resp.Grid = h.bookingService.ExportSnapshot(ctx)
	resp.Result = h.bookingService.LastResult(ctx)
	return resp
}

func (h *Handler) dispatch(ctx context.Context, line string, resp *Response) error {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "book":
		count, err := strconv.Atoi(arg)
		if err != nil {
			return roomerr.InvalidArgument("usage: book <count>")
		}
		_, err = h.bookingService.RequestBooking(ctx, count)
		return err

	case "pick":
		if arg == "" {
			return roomerr.InvalidArgument("usage: pick <room id>")
		}
		_, err := h.bookingService.RequestSingleBook(ctx, arg)
		return err

	case "unbook":
		if arg == "" {
			return roomerr.InvalidArgument("usage: unbook <room id>")
		}
		return h.bookingService.RequestUnbook(ctx, arg)

	case "reset":
		h.bookingService.RequestReset(ctx)
		return nil

	case "random":
		if arg == "" {
			h.bookingService.RequestRandomize(ctx, nil)
			return nil
		}
		probability, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return roomerr.InvalidArgument("usage: random [probability]")
		}
		h.bookingService.RequestRandomize(ctx, &booking.RandomizeInput{Probability: probability})
		return nil

	case "import":
		var snapshot entities.Snapshot
		if err := json.Unmarshal([]byte(arg), &snapshot); err != nil {
			return roomerr.WrapWithCode(err, roomerr.CodeInvalidSnapshot, "snapshot is not valid JSON")
		}
		return h.bookingService.ImportSnapshot(ctx, snapshot)

	case "stairs":
		room, ok := h.bookingService.Grid(ctx).Room(arg)
		if !ok {
			return roomerr.UnknownRoomID(arg)
		}
		cost := allocation.StairsCost(room)
		resp.StairsCost = &cost
		return nil

	case "export", "state":
		return nil

	default:
		return roomerr.InvalidArgument("unknown command "+strconv.Quote(name)).
			WithMeta("command", name)
	}
}

func toErrorBody(err error) *ErrorBody {
	return &ErrorBody{
		Code:    roomerr.GetCode(err),
		Message: err.Error(),
		Meta:    roomerr.GetMeta(err),
	}
}
