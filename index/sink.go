package index

import "context"

type fanout []Sink

// Fanout returns a Sink that replaces each of sinks in order, stopping at
// the first error. Put the durable sink first so that an in-memory table
// is never ahead of it.
func Fanout(sinks ...Sink) Sink {
	return fanout(sinks)
}

func (f fanout) Replace(ctx context.Context, runID string, rows []InflectedForm) error {
	for _, s := range f {
		if err := s.Replace(ctx, runID, rows); err != nil {
			return err
		}
	}
	return nil
}
