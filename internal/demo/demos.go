package demo

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-patterns/adaptor"
	"github.com/katalvlaran/lvlath-patterns/bridge"
	"github.com/katalvlaran/lvlath-patterns/builder"
	cor "github.com/katalvlaran/lvlath-patterns/chain_of_responsibility"
	"github.com/katalvlaran/lvlath-patterns/command"
	"github.com/katalvlaran/lvlath-patterns/composite"
	"github.com/katalvlaran/lvlath-patterns/decorator"
	fm "github.com/katalvlaran/lvlath-patterns/factory_method"
	"github.com/katalvlaran/lvlath-patterns/flyweight"
	"github.com/katalvlaran/lvlath-patterns/iterator"
	"github.com/katalvlaran/lvlath-patterns/mediator"
	obs "github.com/katalvlaran/lvlath-patterns/observer"
	"github.com/katalvlaran/lvlath-patterns/proxy"
	"github.com/katalvlaran/lvlath-patterns/singleton"
	"github.com/katalvlaran/lvlath-patterns/state"
	"github.com/katalvlaran/lvlath-patterns/strategy"
	tm "github.com/katalvlaran/lvlath-patterns/template_method"
	"github.com/katalvlaran/lvlath-patterns/visitor"
)

func runAdaptor(_ context.Context, env Env) error {
	for _, p := range []adaptor.Print{
		adaptor.NewPrintBanner(adaptor.NewBanner("Hello")),
		adaptor.NewEmbeddedPrintBanner("Hello"),
		adaptor.OfBanner(adaptor.NewBanner("Hello")),
	} {
		if err := p.PrintWeak(env.W); err != nil {
			return err
		}
		if err := p.PrintStrong(env.W); err != nil {
			return err
		}
	}
	return nil
}

func runBridge(_ context.Context, env Env) error {
	d1 := bridge.NewDisplay(bridge.NewStringImpl("Hello, Japan."))
	d2 := bridge.NewCountDisplay(bridge.NewStringImpl("Hello, World."))
	d3 := bridge.NewRandomCountDisplay(
		bridge.NewStringImpl("Hello, Universe."),
		bridge.WithSeed(env.Config.Seed),
	)

	if err := d1.Display(env.W); err != nil {
		return err
	}
	if err := d2.Display(env.W); err != nil {
		return err
	}
	if err := d2.MultiDisplay(env.W, 5); err != nil {
		return err
	}
	_, err := d3.RandomDisplay(env.W, 5)
	return err
}

func runBuilder(_ context.Context, env Env) error {
	text := builder.NewTextBuilder()
	if err := builder.NewDirector(text).Construct(); err != nil {
		return err
	}
	if _, err := io.WriteString(env.W, text.Result()); err != nil {
		return err
	}

	page := builder.NewHTMLBuilder(
		builder.WithOutputDir(env.Config.Builder.OutputDir),
		builder.WithLogger(env.Logger),
	)
	if err := builder.NewDirector(page).Construct(); err != nil {
		return err
	}
	path, err := page.Result()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.W, "%s has been written.\n", path)
	return err
}

func runChain(_ context.Context, env Env) error {
	alice := cor.NewNoSupport("Alice")
	alice.
		SetNext(cor.NewLimitSupport("Bob", 100)).
		SetNext(cor.NewSpecialSupport("Charlie", 429)).
		SetNext(cor.NewLimitSupport("Diana", 200)).
		SetNext(cor.NewOddSupport("Elmo")).
		SetNext(cor.NewLimitSupport("Fred", 300))

	c := cor.NewChain(alice, cor.WithLogger(env.Logger))
	for n := 0; n < 500; n += 33 {
		if _, err := c.Handle(env.W, cor.Trouble{Number: n}); err != nil {
			return err
		}
	}
	return nil
}

func runCommand(_ context.Context, env Env) error {
	history := command.NewMacro()
	for _, c := range []command.Command{
		command.NewEcho("Hello"),
		command.NewDoubleEcho("World"),
		command.NewEcho("Goodbye"),
	} {
		if err := history.Append(c); err != nil {
			return err
		}
	}
	history.Undo()

	nested := command.NewMacro()
	if err := nested.Append(history); err != nil {
		return err
	}
	if err := nested.Append(command.NewEcho("!")); err != nil {
		return err
	}
	return nested.Execute(env.W)
}

func runComposite(_ context.Context, env Env) error {
	if _, err := io.WriteString(env.W, "Making root entries...\n"); err != nil {
		return err
	}
	bin := composite.Directory("bin").
		Add(composite.File("vi", 10000)).
		Add(composite.File("latex", 20000))
	usr := composite.Directory("usr")
	root := composite.Directory("root").
		Add(bin).
		Add(composite.Directory("tmp")).
		Add(usr)
	if err := root.PrintList(env.W, ""); err != nil {
		return err
	}

	if _, err := io.WriteString(env.W, "\nMaking user entries...\n"); err != nil {
		return err
	}
	usr.Add(composite.Directory("hanako").
		Add(composite.File("memo.tex", 300))).
		Add(composite.Directory("tomura").
			Add(composite.File("game.doc", 400)).
			Add(composite.File("junk.mail", 500)))
	if err := root.Err(); err != nil {
		return err
	}
	if err := usr.Err(); err != nil {
		return err
	}
	return root.PrintList(env.W, "")
}

func runDecorator(_ context.Context, env Env) error {
	b1 := decorator.NewStringDisplay("Hello, world.")
	b2 := decorator.SideBorder(b1, '#')
	b3 := decorator.FullBorder(b2)
	b4 := decorator.SideBorder(
		decorator.FullBorder(
			decorator.FullBorder(
				decorator.SideBorder(
					decorator.FullBorder(decorator.NewStringDisplay("Hello")),
					'*',
				),
			),
		),
		'/',
	)
	for _, d := range []decorator.Display{b1, b2, b3, b4} {
		if err := decorator.Show(env.W, d); err != nil {
			return err
		}
	}
	return nil
}

func runFactory(_ context.Context, env Env) error {
	f := fm.NewIDCardFactory(env.W, fm.WithLogger(env.Logger))
	for _, owner := range []string{"Hiroshi Yuki", "Tomura", "Hanako Sato"} {
		card, err := fm.Create(f, owner)
		if err != nil {
			return err
		}
		if err := card.Use(env.W); err != nil {
			return err
		}
	}
	return nil
}

func runFlyweight(_ context.Context, env Env) error {
	opts := []flyweight.Option{flyweight.WithLogger(env.Logger)}
	if dir := env.Config.Flyweight.FontDir; dir != "" {
		opts = append(opts, flyweight.WithFS(os.DirFS(dir)))
	}
	if n := env.Config.Flyweight.PoolSize; n > 0 {
		opts = append(opts, flyweight.WithPoolSize(n))
	}

	f, err := flyweight.NewFactory(opts...)
	if err != nil {
		return err
	}
	s, err := flyweight.NewBigString("1212123", f)
	if err != nil {
		return err
	}
	if err := s.Print(env.W); err != nil {
		return err
	}
	_, err = fmt.Fprintf(env.W, "%d characters, %d glyph loads\n", len(s.Chars()), f.Loads())
	return err
}

func runIterator(_ context.Context, env Env) error {
	shelf := iterator.NewBookShelf(4)
	for _, name := range []string{
		"Around the World in 80 Days",
		"Bible",
		"Cinderella",
		"Daddy-Long-Legs",
	} {
		shelf.Append(iterator.Book{Name: name})
	}

	it := shelf.Iterator()
	for it.HasNext() {
		b, err := it.Next()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(env.W, b.Name); err != nil {
			return err
		}
	}
	return nil
}

func runMediator(_ context.Context, env Env) error {
	f := mediator.NewLoginFrame(mediator.WithLogger(env.Logger))
	steps := []struct {
		title string
		act   func() error
	}{
		{"initial", func() error { return nil }},
		{"login selected", f.Login.Click},
		{"username typed", func() error { return f.Username.SetText("alice") }},
		{"password typed", func() error { return f.Password.SetText("secret") }},
	}
	for _, s := range steps {
		if err := s.act(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(env.W, "-- %s\n", s.title); err != nil {
			return err
		}
		if err := f.Render(env.W); err != nil {
			return err
		}
	}
	if err := f.OK.Press(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(env.W, "outcome: %s\n", f.Outcome())
	return err
}

func runObserver(ctx context.Context, env Env) error {
	cfg := env.Config.Observer
	opts := []obs.Option{
		obs.WithSeed(env.Config.Seed),
		obs.WithIterations(cfg.Iterations),
		obs.WithDelay(cfg.Delay),
		obs.WithLogger(env.Logger),
	}
	g := obs.NewRandomNumberGenerator(opts...)

	reg := prometheus.NewRegistry()
	for _, o := range []obs.Observer{
		obs.NewDigitObserver(env.W, opts...),
		obs.NewGraphObserver(env.W, opts...),
		obs.NewMetricsObserver(reg, "random"),
	} {
		if err := g.AddObserver(o); err != nil {
			return err
		}
	}
	if err := g.Execute(ctx); err != nil {
		return err
	}
	return writeMetrics(env.W, reg)
}

// writeMetrics prints every gauge and counter in reg as "name value".
func writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var v float64
			switch {
			case m.GetGauge() != nil:
				v = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				v = m.GetCounter().GetValue()
			default:
				continue
			}
			if _, err := fmt.Fprintf(w, "%s %g\n", mf.GetName(), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func runProxy(ctx context.Context, env Env) error {
	p := proxy.NewPrinterProxy("Alice",
		proxy.WithHeavyJobDelay(env.Config.Proxy.HeavyJobDelay),
		proxy.WithLogger(env.Logger),
	)
	if _, err := fmt.Fprintf(env.W, "Printer name is %s.\n", p.PrinterName()); err != nil {
		return err
	}
	p.SetPrinterName("Bob")
	if _, err := fmt.Fprintf(env.W, "Printer name is %s.\n", p.PrinterName()); err != nil {
		return err
	}
	return p.Print(ctx, env.W, "Hello, world.")
}

func runSingleton(_ context.Context, env Env) error {
	a, b := singleton.Instance(), singleton.Instance()
	if _, err := fmt.Fprintf(env.W, "%s same instance: %t\n", a.Name(), a == b); err != nil {
		return err
	}

	m := singleton.Mutable()
	before := m.Name()
	after := m.With(func(cur string) string { return cur + "!" })
	m.SetName(before)
	if _, err := fmt.Fprintf(env.W, "mutable: %s -> %s\n", before, after); err != nil {
		return err
	}

	t := singleton.Tickets()
	_, err := fmt.Fprintf(env.W, "tickets: %d %d %d\n", t.NextTicket(), t.NextTicket(), t.NextTicket())
	return err
}

func runState(ctx context.Context, env Env) error {
	if err := state.NewSafeFrame(env.W, state.WithLogger(env.Logger)).Run(); err != nil {
		return err
	}
	if _, err := io.WriteString(env.W, "-- state machine\n"); err != nil {
		return err
	}
	return state.NewMachineSafe(env.W, state.WithLogger(env.Logger)).Run(ctx)
}

func runStrategy(_ context.Context, env Env) error {
	seed := env.Config.Seed
	p1, err := strategy.NewPlayer("Taro", strategy.NewWinningStrategy(strategy.WithSeed(seed)))
	if err != nil {
		return err
	}
	p2, err := strategy.NewPlayer("Hana", strategy.NewProbeStrategy(strategy.WithSeed(seed+1)))
	if err != nil {
		return err
	}

	res, err := strategy.Play(env.W, p1, p2, env.Config.Strategy.Rounds)
	if err != nil {
		return err
	}
	env.Logger.Debug("match finished",
		zap.Int("rounds", res.Rounds),
		zap.Int("wins1", res.Wins1),
		zap.Int("wins2", res.Wins2),
		zap.Int("draws", res.Draws),
	)
	return nil
}

func runTemplate(_ context.Context, env Env) error {
	for _, op := range []tm.Operation{
		tm.NewCharDisplay('H'),
		tm.NewStringDisplay("Hello, world."),
		tm.OfString("こんにちは。"),
	} {
		if err := tm.Display(env.W, op); err != nil {
			return err
		}
	}
	return nil
}

func runVisitor(_ context.Context, env Env) error {
	doc := visitor.NewDocument(
		&visitor.Title{Text: "Design Patterns"},
		&visitor.Text{Text: "Twenty-three patterns, eighteen demos."},
		&visitor.HyperLink{Text: "Go", URL: "https://go.dev"},
	)
	if err := doc.Accept(visitor.NewHTMLExporter(env.W)); err != nil {
		return err
	}
	if err := doc.Accept(visitor.NewPlainTextExporter(env.W)); err != nil {
		return err
	}

	j := visitor.NewJSONExporter()
	if err := doc.Accept(j); err != nil {
		return err
	}
	return j.Encode(env.W)
}
