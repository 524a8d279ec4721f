package paradigm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeriveParticiples(t *testing.T) {
	tests := []struct {
		lemma string
		conj  Conjugation
		parts string
		want  Participles
	}{
		{"amo", ConjFirst, amoParts, Participles{
			PresentActive: "amans", PerfectPassive: "amatum", FutureActive: "amaturus", Gerundive: "amandus",
		}},
		{"moneo", ConjSecond, "moneo, monere, monui, monitum", Participles{
			PresentActive: "monens", PerfectPassive: "monitum", FutureActive: "moniturus", Gerundive: "monendus",
		}},
		{"rego", ConjThird, "rego, regere, rexi, rectum", Participles{
			PresentActive: "regens", PerfectPassive: "rectum", FutureActive: "recturus", Gerundive: "regendus",
		}},
		{"capio", ConjThird, "capio, capere, cepi, captum", Participles{
			PresentActive: "capiens", PerfectPassive: "captum", FutureActive: "capturus", Gerundive: "capiendus",
		}},
		{"venio", ConjFourth, "venio, venire, veni", Participles{
			PresentActive: "veniens", FutureActive: "veniturus",
		}},
		{"miror", ConjFirst, "miror, mirari, miratus sum", Participles{
			PresentActive: "mirans", PerfectPassive: "miratus", FutureActive: "miraturus", Gerundive: "mirandus",
		}},
		{"maneo", ConjSecond, "maneo, manere, mansi, mansurus", Participles{
			PresentActive: "manens", FutureActive: "mansurus",
		}},
		{"audeo", ConjSecond, "audeo, audere, ausus sum", Participles{
			PresentActive: "audens", PerfectPassive: "ausus", FutureActive: "ausurus", Gerundive: "audendus",
		}},
		{"sum", ConjIrregular, "", Participles{FutureActive: "futurus"}},
		{"eo", ConjIrregular, "", Participles{
			PresentActive: "iens", FutureActive: "iturus", Gerundive: "eundus",
		}},
		{"fero", ConjThird, "", Participles{
			PresentActive: "ferens", PerfectPassive: "latum", FutureActive: "laturus", Gerundive: "ferendus",
		}},
		{"odi", ConjIrregular, "", Participles{}},
		{"amo", ConjFirst, "", Participles{}},
	}
	for _, tt := range tests {
		t.Run(tt.lemma, func(t *testing.T) {
			got := DeriveParticiples(tt.lemma, tt.conj, tt.parts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeriveParticiples(%q) mismatch (-want +got):\n%s", tt.lemma, diff)
			}
		})
	}
}
