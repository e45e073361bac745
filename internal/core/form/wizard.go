package form

import "github.com/ReyMelin/FabledGalaxyWebsite/internal/core/domain"

// Wizard tracks progress through the submission steps. Moving back is always
// allowed; moving forward validates every step that is skipped over.
type Wizard struct {
	current  int
	values   Values
	signedIn bool
}

func NewWizard(signedIn bool) *Wizard {
	return &Wizard{current: 1, values: Values{}, signedIn: signedIn}
}

func (w *Wizard) Current() int { return w.current }

func (w *Wizard) IsLast() bool { return w.current == TotalSteps() }

func (w *Wizard) Set(key, value string) {
	w.values[key] = value
}

func (w *Wizard) Values() Values {
	out := make(Values, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

// Progress is the completed share of the wizard in percent.
func (w *Wizard) Progress() float64 {
	return float64(w.current) / float64(TotalSteps()) * 100
}

func (w *Wizard) Next() error {
	return w.GoTo(w.current + 1)
}

func (w *Wizard) Back() {
	if w.current > 1 {
		w.current--
	}
}

// GoTo moves to step n. When a step on the way fails validation the wizard
// stops on that step and returns its error.
func (w *Wizard) GoTo(n int) error {
	if n < 1 {
		n = 1
	}
	if n > TotalSteps() {
		n = TotalSteps()
	}

	for i := w.current; i < n; i++ {
		if err := ValidateStep(i, w.values, w.signedIn); err != nil {
			w.current = i
			return err
		}
	}
	w.current = n
	return nil
}

func (w *Wizard) Submit() (domain.SubmissionPayload, error) {
	return Build(w.values, w.signedIn)
}
