// Package v1alpha1 exposes the HTTP surface of the roll API
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KirkDiggler/roll-api/internal/errors"
	"github.com/KirkDiggler/roll-api/internal/orchestrators/itemroll"
	"github.com/KirkDiggler/roll-api/internal/roll"
)

// RollHandlerConfig holds dependencies for the roll handler
type RollHandlerConfig struct {
	RollService itemroll.Service
}

// Validate ensures all required dependencies are present
func (c *RollHandlerConfig) Validate() error {
	if c.RollService == nil {
		return errors.InvalidArgument("roll service is required")
	}
	return nil
}

// RollHandler serves the item roll endpoints
type RollHandler struct {
	rollService itemroll.Service
}

// NewRollHandler creates a new roll handler with the given configuration
func NewRollHandler(cfg *RollHandlerConfig) (*RollHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &RollHandler{
		rollService: cfg.RollService,
	}, nil
}

// Register attaches the handler's routes to the router
func (h *RollHandler) Register(r *mux.Router) {
	r.HandleFunc("/v1alpha1/rolls", h.RollItem).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

type rollFieldRequest struct {
	Kind string `json:"kind"`

	// Damage payload
	Index        int32  `json:"index,omitempty"`
	All          bool   `json:"all,omitempty"`
	Versatile    bool   `json:"versatile,omitempty"`
	CritOverride string `json:"crit_override,omitempty"`
	Context      string `json:"context,omitempty"`

	// Save payload
	Ability string `json:"ability,omitempty"`
	DC      int32  `json:"dc,omitempty"`

	// Tool payload
	TriggersCrit bool `json:"triggers_crit,omitempty"`

	// Custom payload
	Title   string `json:"title,omitempty"`
	Formula string `json:"formula,omitempty"`
	Rolls   int32  `json:"rolls,omitempty"`
	State   string `json:"state,omitempty"`

	Text string `json:"text,omitempty"`
}

type rollRequest struct {
	ItemID  string `json:"item_id"`
	OwnerID string `json:"owner_id"`

	Advantage     int32    `json:"advantage,omitempty"`
	Disadvantage  int32    `json:"disadvantage,omitempty"`
	ForceCrit     bool     `json:"force_crit,omitempty"`
	Preset        int32    `json:"preset,omitempty"`
	SlotLevel     int32    `json:"slot_level,omitempty"`
	ConsumeSlot   bool     `json:"consume_slot,omitempty"`
	Consume       bool     `json:"consume,omitempty"`
	PlaceTemplate bool     `json:"place_template,omitempty"`
	Versatile     bool     `json:"versatile,omitempty"`
	Whisper       []string `json:"whisper,omitempty"`

	Fields []rollFieldRequest `json:"fields,omitempty"`
}

type rollResponse struct {
	Crit       bool   `json:"crit"`
	Content    string `json:"content"`
	Destroyed  bool   `json:"destroyed"`
	DiceRolled int    `json:"dice_rolled"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RollItem handles POST /v1alpha1/rolls
func (h *RollHandler) RollItem(w http.ResponseWriter, r *http.Request) {
	var req rollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body"))
		return
	}

	input, err := toRollInput(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.rollService.RollItem(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rollResponse{
		Crit:       out.Crit,
		Content:    out.Content,
		Destroyed:  out.Destroyed,
		DiceRolled: out.DiceRolled,
	})
}

// Health handles GET /healthz
func (h *RollHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toRollInput(req *rollRequest) (*itemroll.RollItemInput, error) {
	input := &itemroll.RollItemInput{
		ItemID:  req.ItemID,
		OwnerID: req.OwnerID,
		Params: itemroll.RollParams{
			Advantage:     req.Advantage,
			Disadvantage:  req.Disadvantage,
			ForceCrit:     req.ForceCrit,
			Preset:        req.Preset,
			SlotLevel:     req.SlotLevel,
			ConsumeSlot:   req.ConsumeSlot,
			Consume:       req.Consume,
			PlaceTemplate: req.PlaceTemplate,
			Versatile:     req.Versatile,
			Whisper:       req.Whisper,
		},
	}

	for i := range req.Fields {
		field, err := toField(&req.Fields[i])
		if err != nil {
			return nil, err
		}
		input.Fields = append(input.Fields, field)
	}
	return input, nil
}

func toField(req *rollFieldRequest) (itemroll.Field, error) {
	kind := itemroll.FieldKind(req.Kind)
	field := itemroll.Field{Kind: kind, Text: req.Text}

	switch kind {
	case itemroll.FieldAttack, itemroll.FieldOther,
		itemroll.FieldDescription, itemroll.FieldFlavor, itemroll.FieldCritExtra:
		// No payload beyond the kind and optional text

	case itemroll.FieldToolCheck:
		field.Tool = &itemroll.ToolField{TriggersCrit: req.TriggersCrit}

	case itemroll.FieldDamage:
		field.Damage = &itemroll.DamageField{
			Index:        req.Index,
			All:          req.All,
			Versatile:    req.Versatile,
			CritOverride: req.CritOverride,
			Context:      req.Context,
		}

	case itemroll.FieldSaveButton:
		field.Save = &itemroll.SaveField{Ability: req.Ability, DC: req.DC}

	case itemroll.FieldCustom:
		field.Custom = &itemroll.CustomField{
			Title:   req.Title,
			Formula: req.Formula,
			Rolls:   req.Rolls,
			State:   roll.State(req.State),
		}

	default:
		return itemroll.Field{}, errors.InvalidArgumentf("unknown field kind: %s", req.Kind)
	}

	return field, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}
