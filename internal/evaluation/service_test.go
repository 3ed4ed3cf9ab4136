package evaluation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/mathmentor/internal/llm"
)

func evalRequest() *Request {
	return &Request{
		Question:      "What is 1/2 + 1/4?",
		CorrectAnswer: "3/4",
		StudentAnswer: "2/6",
	}
}

func TestEvaluate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"is_correct": false,
		"solution_steps": ["Convert 1/2 to 2/4.", "Add 2/4 and 1/4 to get 3/4."],
		"short_feedback": "Good try! Remember to find a common denominator first."
	}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	result := svc.Evaluate(context.Background(), evalRequest())
	if result.Meta.Status != StatusOK {
		t.Errorf("status = %q, want %q", result.Meta.Status, StatusOK)
	}
	if result.Response.IsCorrect {
		t.Error("answer should be judged incorrect")
	}
	if len(result.Response.SolutionSteps) != 2 {
		t.Errorf("steps = %d, want 2", len(result.Response.SolutionSteps))
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
}

func TestEvaluate_FallbackOnModelFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call fails
	svc := NewService(mock, DefaultConfig(), nil)

	req := evalRequest()
	req.StudentAnswer = "6/8" // equivalent to 3/4

	result := svc.Evaluate(context.Background(), req)
	if result.Meta.Status != StatusFallback {
		t.Fatalf("status = %q, want %q", result.Meta.Status, StatusFallback)
	}
	if !result.Response.IsCorrect {
		t.Error("6/8 should match 3/4 under normalization")
	}
	if result.Response.ShortFeedback == "" || len(result.Response.SolutionSteps) == 0 {
		t.Error("fallback must still fill all fields")
	}
}

func TestEvaluate_FallbackOnUnparseableOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json at all`)})
	svc := NewService(mock, DefaultConfig(), nil)

	result := svc.Evaluate(context.Background(), evalRequest())
	if result.Meta.Status != StatusFallback {
		t.Fatalf("status = %q, want %q", result.Meta.Status, StatusFallback)
	}
	if result.Response.IsCorrect {
		t.Error("2/6 does not match 3/4")
	}
}

func TestEvaluate_FallbackOnIncompleteOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"is_correct": true, "solution_steps": [], "short_feedback": ""}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	result := svc.Evaluate(context.Background(), evalRequest())
	if result.Meta.Status != StatusFallback {
		t.Errorf("status = %q, want %q", result.Meta.Status, StatusFallback)
	}
}

func TestEvaluate_SingleModelCall(t *testing.T) {
	mock := llm.NewMockProvider() // always fails
	svc := NewService(mock, DefaultConfig(), nil)

	svc.Evaluate(context.Background(), evalRequest())
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1 (no retry chaining)", mock.CallCount())
	}
}
