package paradigm

// Participles maps each participle kind to its citation form (masculine
// nominative singular). Declining one is a job for DeclineAdjective.
type Participles map[ParticipleKind]string

// DeriveParticiples builds the four participles from the stems of a
// verb: present active (amans), perfect passive (the fourth principal
// part as given, amatum), future active (amaturus) and gerundive
// (amandus). Deponents take the perfect passive from their third part
// (miratus). Without a fourth principal part only the present active and
// a future active built on the present stem remain; a fourth part in
// -urus is itself the future active and nothing passive is derived.
func DeriveParticiples(lemma string, c Conjugation, principalParts string) Participles {
	out := make(Participles)
	pp := ParsePrincipalParts(principalParts)
	if iv, ok := lookupIrregular(lemma, c); ok {
		if iv.base == ConjIrregular {
			for k, v := range iv.participles {
				out[k] = v
			}
			return out
		}
		if pp.Present == "" {
			pp = ParsePrincipalParts(iv.parts)
		}
		c = iv.base
	}

	c = promoteThirdIO(c, pp)
	t, ok := conjugationTables[c]
	if !ok {
		return out
	}
	st, ok := ExtractVerbStems(c, pp)
	if !ok {
		return out
	}

	out[PresentActive] = st.Present + t.presentParticiple
	switch {
	case st.Participle != "":
		out[PerfectPassive] = st.Participle
	case st.Supine != "":
		out[PerfectPassive] = firstField(pp.Supine)
	case st.Future != "":
		out[FutureActive] = st.Future
		return out
	default:
		out[FutureActive] = st.Present + t.futureParticiple
		return out
	}
	out[FutureActive] = st.Supine + "urus"
	out[Gerundive] = st.Present + t.gerundive
	return out
}
