package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestMergeSections_PrimaryWinsWhenNonEmpty(t *testing.T) {
	primary := &types.ResumeDocument{Summary: "primary summary"}
	secondary := &types.ResumeDocument{Summary: "secondary summary"}

	merged := MergeSections(primary, secondary, originalDoc())

	assert.Equal(t, "primary summary", merged.Summary)
}

func TestMergeSections_FallsBackPerSection(t *testing.T) {
	primary := &types.ResumeDocument{Summary: "primary summary"}
	secondary := &types.ResumeDocument{
		Experience: []types.ExperienceEntry{
			{Company: "Beta", Title: "SRE", Bullets: []string{"Ran 200 nodes"}},
		},
	}

	merged := MergeSections(primary, secondary, originalDoc())

	// summary from primary, experience from secondary, the rest original
	assert.Equal(t, "primary summary", merged.Summary)
	require.Len(t, merged.Experience, 1)
	assert.Equal(t, "Beta", merged.Experience[0].Company)
	assert.Equal(t, originalDoc().Header, merged.Header)
	assert.Equal(t, originalDoc().Skills, merged.Skills)
}

func TestMergeSections_NilDocumentsFallBackToOriginal(t *testing.T) {
	merged := MergeSections(nil, nil, originalDoc())

	assert.Equal(t, originalDoc().Header, merged.Header)
	assert.Equal(t, originalDoc().Summary, merged.Summary)
	assert.Equal(t, originalDoc().Experience, merged.Experience)
}

func TestMergeSections_DoesNotAliasInputSlices(t *testing.T) {
	primary := &types.ResumeDocument{
		Experience: []types.ExperienceEntry{
			{Company: "Beta", Title: "SRE", Bullets: []string{"Ran 200 nodes"}},
		},
	}

	merged := MergeSections(primary, nil, originalDoc())
	merged.Experience[0].Bullets[0] = "mutated"

	assert.Equal(t, "Ran 200 nodes", primary.Experience[0].Bullets[0])
}
