package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	resp  *genai.GenerateContentResponse
	err   error
	parts []genai.Part
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	return f.resp, f.err
}

func candidate(parts ...genai.Part) *genai.Candidate {
	return &genai.Candidate{Content: &genai.Content{Role: "model", Parts: parts}}
}

func TestGeminiOracle_ConcatenatesTextParts(t *testing.T) {
	fake := &fakeGenerator{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		candidate(genai.Text(`{"test_file_path":`), genai.Blob{MIMEType: "image/png"}, genai.Text(`"t.py"}`)),
		candidate(genai.Text("ignored")),
	}}}

	oracle := &GeminiOracle{model: fake, name: "gemini-2.5-flash"}

	text, err := oracle.Generate(context.Background(), "write tests")
	require.NoError(t, err)

	assert.Equal(t, `{"test_file_path":"t.py"}`, text)
	assert.Equal(t, []genai.Part{genai.Text("write tests")}, fake.parts)
}

func TestGeminiOracle_NoCandidates(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"empty", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oracle := &GeminiOracle{model: &fakeGenerator{resp: tt.resp}}

			_, err := oracle.Generate(context.Background(), "p")
			require.ErrorIs(t, err, ErrOracleUnavailable)
			assert.Contains(t, err.Error(), "no candidates")
		})
	}
}

func TestGeminiOracle_WrapsTransportError(t *testing.T) {
	cause := errors.New("rpc error: code = Unavailable")
	oracle := &GeminiOracle{model: &fakeGenerator{err: cause}}

	_, err := oracle.Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrOracleUnavailable)
	require.ErrorIs(t, err, cause)
}

func TestGeminiOracle_CloseWithoutClient(t *testing.T) {
	assert.NoError(t, (&GeminiOracle{}).Close())
}
