package procs

// Proc is one step of a sequence. Run returns the proc that replaces it,
// or nil when the step is done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) error

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return nil, f(ctx)
}

// Expand is a step that may unfold into further steps.
type Expand[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Expand[any](nil)

func (e Expand[C]) Run(ctx C) (Proc[C], error) {
	return e(ctx)
}

// Run drives proc until nothing is left or a step fails.
func Run[C any](ctx C, proc Proc[C]) (err error) {
	for proc != nil {
		proc, err = proc.Run(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}
