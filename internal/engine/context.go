package engine

// --- Turn context ------------------------------------------------------
//
// turnContext accumulates the human-readable exchange log for one turn,
// one line per exchange, in resolution order.
type turnContext struct {
	d   *Duel
	log []string
}

func newTurnContext(d *Duel) *turnContext {
	return &turnContext{d: d, log: make([]string, 0, 8)}
}

func (tc *turnContext) add(msg string) { tc.log = append(tc.log, msg) }
