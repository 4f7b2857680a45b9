package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/sparhok/wealth"
)

// PensionMarkdown renders a retirement income forecast to a markdown string.
func PensionMarkdown(f *wealth.PensionForecast) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Pension Forecast at Age %d", f.Inputs.RetirementAge))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Projected Pot"), md.Bold(f.ProjectedPot.String())},
		Rows: [][]string{
			{"Monthly from Pot", f.MonthlyFromPot.String()},
			{"Projected Monthly Income", f.MonthlyIncome.String()},
			{"Target Monthly Income", f.TargetIncome.String()},
			{"Replacement Rate", f.ReplacementRate.String()},
		},
	})

	if f.Gap.IsPositive() {
		doc.H2("Shortfall")
		doc.PlainText(fmt.Sprintf("The projection is %s short of the target each month. Saving an extra %s per month would close the gap.",
			f.Gap, f.AdditionalSavingsNeeded))
	} else {
		doc.PlainText("The projection meets the target replacement income.")
	}

	return doc.String()
}
