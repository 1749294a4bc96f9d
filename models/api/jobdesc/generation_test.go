package jobdescapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerationRequestValidate(t *testing.T) {
	t.Run(`valid request`, func(t *testing.T) {
		req := GenerationRequest{Designation: "Software Engineer", Yoe: 5, Skills: []string{"Go"}}
		require.NoError(t, req.Validate())
	})

	t.Run(`empty skills and extra info are allowed`, func(t *testing.T) {
		req := GenerationRequest{Designation: "Data Scientist", Yoe: 0}
		require.NoError(t, req.Validate())
	})

	t.Run(`empty designation is rejected`, func(t *testing.T) {
		req := GenerationRequest{Designation: "", Yoe: 5}
		require.Error(t, req.Validate())
	})

	t.Run(`blank designation is rejected`, func(t *testing.T) {
		req := GenerationRequest{Designation: "   ", Yoe: 5}
		require.Error(t, req.Validate())
	})

	t.Run(`negative experience is rejected`, func(t *testing.T) {
		req := GenerationRequest{Designation: "Engineer", Yoe: -1}
		require.Error(t, req.Validate())
	})

	t.Run(`experience above 50 is rejected`, func(t *testing.T) {
		req := GenerationRequest{Designation: "Engineer", Yoe: 51}
		require.Error(t, req.Validate())
	})
}
