package diagnosis

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/mathmentor/internal/catalog"
	"github.com/abhisek/mathmentor/internal/langdetect"
	"github.com/abhisek/mathmentor/internal/llm"
)

// Config holds pipeline tuning knobs.
type Config struct {
	// MaxTokens is the token budget for one model response.
	MaxTokens int

	// Temperature for the initial attempt. Kept low: consistency beats
	// creativity for diagnosis.
	Temperature float64

	// RepairTemperature for the repair retry, lower still.
	RepairTemperature float64

	// DefaultLanguage is the language the fallback controller downgrades to.
	DefaultLanguage string
}

// DefaultConfig returns recommended pipeline settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         1024,
		Temperature:       0.2,
		RepairTemperature: 0.1,
		DefaultLanguage:   DefaultLanguage,
	}
}

// Service runs the diagnosis pipeline: resolve candidates, detect
// structural patterns, call the model, sanitize and validate its output,
// and degrade through repair, language fallback, and the deterministic
// fallback until a schema-valid response exists.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates a diagnosis service. A nil logger is replaced with a
// no-op logger.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Diagnose runs the full pipeline for one request. The only error it can
// return is ErrNoValidCandidates; every other failure mode is absorbed
// into a degraded response disclosed through the metadata envelope.
func (s *Service) Diagnose(ctx context.Context, req *Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "diagnosis")

	cands, err := ResolveCandidates(req.Topic, req.CandidateIDs)
	if err != nil {
		return nil, err
	}

	s.log.Debug("candidates resolved",
		zap.String("topic", req.Topic),
		zap.Strings("candidates", candidateIDs(cands)))

	match, fired := s.detectHeuristic(req, cands)

	requested := req.Language
	if requested == "" {
		requested = s.cfg.DefaultLanguage
	}

	languages := []string{requested}
	if requested != s.cfg.DefaultLanguage {
		languages = append(languages, s.cfg.DefaultLanguage)
	}

	for i, lang := range languages {
		resp, repaired, ok := s.attemptLanguage(ctx, req, cands, lang)
		if !ok {
			s.log.Info("diagnosis attempt exhausted for language",
				zap.String("topic", req.Topic),
				zap.String("language", lang))
			continue
		}

		if fired {
			applyHeuristicOverride(resp, match)
		}

		status := StatusOK
		if repaired || i > 0 {
			status = StatusRetried
		}
		return &Result{
			Response: resp,
			Meta: Meta{
				Status:             status,
				Language:           lang,
				LanguageDowngraded: i > 0,
				HeuristicFired:     fired,
			},
		}, nil
	}

	// All model attempts exhausted. The deterministic fallback is already
	// non-model-derived, so the heuristic override does not run against it.
	s.log.Warn("all model attempts exhausted, serving deterministic fallback",
		zap.String("topic", req.Topic),
		zap.String("requested_language", requested))
	return &Result{
		Response: deterministicFallback(req.Topic, cands),
		Meta: Meta{
			Status:             StatusFallback,
			Language:           s.cfg.DefaultLanguage,
			LanguageDowngraded: requested != s.cfg.DefaultLanguage,
			HeuristicFired:     fired,
		},
	}, nil
}

// detectHeuristic runs the structural checks for the request's topic and
// confirms the detected misconception is a resolved candidate.
func (s *Service) detectHeuristic(req *Request, cands []*catalog.Misconception) (HeuristicMatch, bool) {
	heurID, ok := catalog.HeuristicMisconceptionID(req.Topic)
	if !ok {
		return HeuristicMatch{}, false
	}

	match, fired := DetectFractionSwap(req.StudentAnswer, req.CorrectAnswer)
	if !fired {
		return HeuristicMatch{}, false
	}
	match.MisconceptionID = heurID

	for _, c := range cands {
		if c.ID == heurID {
			return match, true
		}
	}
	return HeuristicMatch{}, false
}

// attemptLanguage runs one full attempt in one language: initial call,
// sanitize, validate, and a single repair retry on validation failure.
// Returns the validated response, whether repair was needed, and whether
// the attempt succeeded. At most two model calls happen here.
func (s *Service) attemptLanguage(ctx context.Context, req *Request, cands []*catalog.Misconception, lang string) (*Response, bool, bool) {
	system := buildSystemPrompt(lang, cands)
	userMsg := llm.Message{Role: llm.RoleUser, Content: buildUserMessage(req)}

	doc, assistantText, err := s.invoke(ctx, system, []llm.Message{userMsg}, s.cfg.Temperature)

	var repairMsg string
	switch err.(type) {
	case nil:
		raw := decodeRaw(doc)
		sanitizeIDs(raw, cands)
		violations := validateRaw(raw)
		if len(violations) == 0 {
			s.observeLanguage(doc, lang)
			return raw.toResponse(), false, true
		}
		s.log.Debug("diagnosis response failed validation",
			zap.String("language", lang),
			zap.Error(&ErrSchemaViolations{Violations: violations}))
		repairMsg = buildRepairMessage(violations, cands)

	case *ErrMalformedOutput:
		s.log.Debug("diagnosis response was not valid JSON", zap.String("language", lang))
		repairMsg = buildMalformedRepairMessage(cands)

	default:
		// Transport failure: nothing to repair against.
		s.log.Debug("diagnosis model call failed", zap.String("language", lang), zap.Error(err))
		return nil, false, false
	}

	// Repair retry: replay the conversation with the offending assistant
	// message and a correction instruction, once, at lower temperature.
	messages := []llm.Message{
		userMsg,
		{Role: llm.RoleAssistant, Content: assistantText},
		{Role: llm.RoleUser, Content: repairMsg},
	}

	doc, _, err = s.invoke(ctx, system, messages, s.cfg.RepairTemperature)
	if err != nil {
		return nil, false, false
	}

	raw := decodeRaw(doc)
	sanitizeIDs(raw, cands)
	if violations := validateRaw(raw); len(violations) != 0 {
		// Two consecutive failures: language-level failure.
		return nil, false, false
	}
	s.observeLanguage(doc, lang)
	return raw.toResponse(), true, true
}

// observeLanguage compares the language the response was actually written
// in against the requested one. The pipeline does not act on mismatches;
// the signal exists so the language contract can be monitored in logs.
func (s *Service) observeLanguage(doc map[string]any, requested string) {
	res := langdetect.DetectFromResponse(doc)
	if string(res.Tag) == requested || res.Tag == langdetect.Unknown {
		return
	}
	s.log.Info("response language differs from requested",
		zap.String("requested", requested),
		zap.String("detected", string(res.Tag)),
		zap.Float64("confidence", res.Confidence),
		zap.String("rationale", res.Rationale))
}
