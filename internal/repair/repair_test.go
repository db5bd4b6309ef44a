package repair

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func testDoc() *types.ResumeDocument {
	return &types.ResumeDocument{
		Header: types.Header{Name: "Jordan Smith", TargetRole: "Software Engineer"},
		Experience: []types.ExperienceEntry{
			{
				Company: "Acme Corp",
				Title:   "Software Engineer",
				Bullets: []string{
					"Developed payment service handling 2M requests",
				},
			},
		},
	}
}

func TestRepair_WorkEntryPaddedToExactlyThreeBullets(t *testing.T) {
	p := NewPipeline(nil, nil, DefaultOptions())

	out, changes := p.Repair(testDoc(), "")

	require.Len(t, out.Experience, 1)
	assert.Len(t, out.Experience[0].Bullets, 3)

	added := 0
	for _, c := range changes {
		if c.Type == types.ChangeAdded {
			added++
			assert.Equal(t, "experience", c.Section)
		}
	}
	assert.Equal(t, 2, added)
}

func TestRepair_WorkEntryTruncatedToExactlyThreeBullets(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{
		"Developed payment service handling 2M requests",
		"Built billing module processing 1M events",
		"Launched search platform serving 900 users",
		"Engineered alerting system covering 40 services",
		"Created reporting dashboard for 12 teams",
	}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, changes := p.Repair(doc, "")

	assert.Len(t, out.Experience[0].Bullets, 3)

	removed := 0
	for _, c := range changes {
		if c.Type == types.ChangeRemoved {
			removed++
		}
	}
	assert.Equal(t, 2, removed)
}

func TestRepair_ProjectBulletCountsStayBetweenTwoAndThree(t *testing.T) {
	doc := testDoc()
	doc.Projects = []types.ProjectEntry{
		{Name: "Sparse Project", Bullets: []string{"Built ingestion pipeline handling 5K events"}},
		{Name: "Busy Project", Bullets: []string{
			"Built ingestion pipeline handling 5K events",
			"Designed storage module for 3 regions",
			"Implemented retry system across 7 services",
			"Created metrics dashboard for 4 teams",
		}},
	}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	assert.Len(t, out.Projects[0].Bullets, 2)
	assert.Len(t, out.Projects[1].Bullets, 3)
}

func TestRepair_EveryBulletCarriesAMetric(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{
		"Developed the checkout feature",
		"Responsible for maintaining the legacy platform",
	}
	doc.Projects = []types.ProjectEntry{
		{Name: "Side Project", Bullets: []string{"Built a small scheduling app"}},
	}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	for _, b := range out.AllBullets() {
		assert.True(t, HasMetric(b), "bullet lacks a metric: %q", b)
	}
}

func TestRepair_WeakVerbPhraseReplaced(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{"Responsible for maintaining the payment service"}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	assert.True(t, strings.HasPrefix(out.Experience[0].Bullets[0], "Led "),
		"got %q", out.Experience[0].Bullets[0])
}

func TestRepair_ActionVerbPrependedWhenLeadIsWeak(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{"the checkout feature for 40K mobile users"}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	assert.True(t, strings.HasPrefix(out.Experience[0].Bullets[0], "Developed the checkout"),
		"got %q", out.Experience[0].Bullets[0])
}

func TestRepair_RepeatedVerbSwappedForSynonymAtCeiling(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{
		"Developed payment service handling 2M requests",
		"Developed billing module processing 1M events",
		"Developed search platform serving 900 users",
	}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	bullets := out.Experience[0].Bullets
	require.Len(t, bullets, 3)
	assert.True(t, strings.HasPrefix(bullets[0], "Developed "))
	assert.True(t, strings.HasPrefix(bullets[1], "Developed "))
	assert.True(t, strings.HasPrefix(bullets[2], "Built "), "got %q", bullets[2])
}

func TestRepair_InjectedKeywordComesFromJobDescription(t *testing.T) {
	jd := "We need deep Kubernetes experience for this role."
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(testDoc(), jd)

	first := out.Experience[0].Bullets[0]
	assert.Contains(t, first, "Kubernetes")
	assert.NotContains(t, strings.Join(out.AllBullets(), "\n"), "Terraform")
}

func TestRepair_NoInjectionWhenBulletAlreadyMentionsKeyword(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{"Developed Kubernetes operators handling 2M requests"}
	jd := "We need deep Kubernetes experience for this role."
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, jd)

	assert.Equal(t, 1, strings.Count(strings.ToLower(out.Experience[0].Bullets[0]), "kubernetes"))
}

func TestRepair_FormattingNormalized(t *testing.T) {
	doc := testDoc()
	doc.Experience[0].Bullets = []string{"developed payment service handling 2M requests"}
	p := NewPipeline(nil, nil, DefaultOptions())

	out, _ := p.Repair(doc, "")

	b := out.Experience[0].Bullets[0]
	assert.True(t, strings.HasPrefix(b, "Developed"), "got %q", b)
	assert.True(t, strings.HasSuffix(b, "."), "got %q", b)
}

func TestRepair_InputDocumentNotMutated(t *testing.T) {
	doc := testDoc()
	snapshot := doc.Clone()
	p := NewPipeline(nil, nil, DefaultOptions())

	_, _ = p.Repair(doc, "Kubernetes role")

	assert.Equal(t, snapshot, doc)
}

func TestRepair_Deterministic(t *testing.T) {
	jd := "Senior engineer role working with Kubernetes, Terraform, and PostgreSQL."
	p := NewPipeline(nil, nil, DefaultOptions())

	first, firstChanges := p.Repair(testDoc(), jd)
	second, secondChanges := p.Repair(testDoc(), jd)

	assert.Equal(t, first, second)
	assert.Equal(t, firstChanges, secondChanges)
}

func TestClassifyBullet_CategoryKeywordPriority(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected BulletCategory
	}{
		{"leadership wins over development", "mentored the team building the api", CategoryLeadership},
		{"improvement", "cut latency across the board", CategoryImprovement},
		{"analysis", "produced weekly metrics report", CategoryAnalysis},
		{"collaboration", "partnered with vendors on the contract", CategoryCollaboration},
		{"development", "shipped a new service", CategoryDevelopment},
		{"default is development", "various tasks", CategoryDevelopment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyBullet(tt.text))
		})
	}
}

func TestHasMetric_Patterns(t *testing.T) {
	assert.True(t, HasMetric("cut costs by 40%"))
	assert.True(t, HasMetric("saved $2M annually"))
	assert.True(t, HasMetric("processed millions of rows across 3 million shards"))
	assert.False(t, HasMetric("improved the developer experience"))
}

func TestMetricTemplates_EveryPhraseCarriesAMetric(t *testing.T) {
	for category, templates := range metricTemplates {
		for _, phrase := range templates {
			assert.True(t, HasMetric(phrase),
				"template for %s lacks a metric: %q", category, phrase)
		}
	}
}
