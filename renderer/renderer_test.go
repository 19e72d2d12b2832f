package renderer

import (
	"testing"

	"github.com/etnz/ppo"
)

func TestRenderCatalog(t *testing.T) {
	got := RenderCatalog(NewCatalogView(ppo.DefaultCatalog(), ""))
	want := `# Project Catalog

| Project | Cost | Benefit | Benefit/Cost |
|:---|---:|---:|---:|
| Proj_A | 4 | 10 | 2.50 |
| Proj_B | 6 | 12 | 2.00 |
| Proj_C | 5 | 8 | 1.60 |
| Proj_D | 3 | 7 | 2.33 |
| Proj_E | 2 | 4 | 2.00 |
| **Total** | **20** | **41** | |
`
	if got != want {
		t.Errorf("RenderCatalog() =\n%s\nwant\n%s\ngot :%q\nwant:%q", got, want, got, want)
	}
}

func TestRenderCatalogCurrency(t *testing.T) {
	free, _ := ppo.NewProject("Free", 0, 3)
	c, _ := ppo.NewCatalog(free)
	got := RenderCatalog(NewCatalogView(c, "USD"))
	want := `# Project Catalog

| Project | Cost | Benefit | Benefit/Cost |
|:---|---:|---:|---:|
| Free | $0.00 | 3 | - |
| **Total** | **$0.00** | **3** | |
`
	if got != want {
		t.Errorf("RenderCatalog() =\n%s\nwant\n%s\ngot :%q\nwant:%q", got, want, got, want)
	}
}

func TestRenderPlan(t *testing.T) {
	testCases := []struct {
		name   string
		budget int
		opts   PlanRenderOptions
		want   string
	}{
		{
			name:   "chosen",
			budget: 10,
			want: `# Portfolio for a budget of 10

Maximum total benefit: **22**

## Chosen Projects

| Project | Cost | Benefit | Benefit/Cost |
|:---|---:|---:|---:|
| Proj_A | 4 | 10 | 2.50 |
| Proj_B | 6 | 12 | 2.00 |

## Budget

| Used | Unused | Utilization |
|---:|---:|---:|
| 10 | 0 | 100.00% |
`,
		},
		{
			name:   "nothing fits",
			budget: 1,
			want: `# Portfolio for a budget of 1

Maximum total benefit: **0**

## Chosen Projects

No project was chosen, the budget may be too small.

## Budget

| Used | Unused | Utilization |
|---:|---:|---:|
| 0 | 1 | 0.00% |
`,
		},
		{
			name:   "explained",
			budget: 5,
			opts:   PlanRenderOptions{Explain: true},
			want: `# Portfolio for a budget of 5

Maximum total benefit: **11**

## Chosen Projects

| Project | Cost | Benefit | Benefit/Cost |
|:---|---:|---:|---:|
| Proj_D | 3 | 7 | 2.33 |
| Proj_E | 2 | 4 | 2.00 |

## Budget

| Used | Unused | Utilization |
|---:|---:|---:|
| 5 | 0 | 100.00% |

## Explanation

- the selection is an optimization under a budget constraint;
- it is solved exactly with the dynamic programming algorithm of the 0/1 knapsack problem;
- among equally good portfolios, the one reported favors projects earlier in the catalog.
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := ppo.Optimize(ppo.DefaultCatalog(), tc.budget)
			if err != nil {
				t.Fatal(err)
			}
			got := RenderPlan(NewPlanView(plan, ""), tc.opts)
			if got != tc.want {
				t.Errorf("RenderPlan() =\n%s\nwant\n%s\ngot :%q\nwant:%q", got, tc.want, got, tc.want)
			}
		})
	}
}

func TestRenderSweep(t *testing.T) {
	points, err := ppo.Sweep(ppo.DefaultCatalog(), 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	got := RenderSweep(NewSweepView(points, ""))
	want := `# Benefit by Budget

| Budget | Max Benefit | Gain |
|---:|---:|---:|
| 1 | 0 | - |
| 2 | 4 | +4 |
| 3 | 7 | +3 |

The best benefit of **7** is reached with a budget of **3**.
`
	if got != want {
		t.Errorf("RenderSweep() =\n%s\nwant\n%s\ngot :%q\nwant:%q", got, want, got, want)
	}
}
