package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jazzfool/vx/pkg/inspect"
	"github.com/jazzfool/vx/pkg/kit"
	"github.com/jazzfool/vx/pkg/theme"
	"github.com/jazzfool/vx/pkg/vx"
)

// Counter is the demo root component: a click counter over a kit
// button and label.
type Counter struct {
	vx.ComponentBase

	count int
	btn   kit.ButtonRef
	label kit.LabelRef
}

func newCounter(th theme.Theme) vx.Factory[*Counter] {
	return func(g *vx.Registry, cref vx.Ref[*Counter]) (*Counter, error) {
		btn, err := kit.NewButton(g, cref.AsAny(), th)
		if err != nil {
			return nil, err
		}
		label, err := kit.NewLabel(g, cref.AsAny(), th)
		if err != nil {
			return nil, err
		}

		var clickSlot vx.Slot
		if err := vx.Borrow(g, btn, func(_ *vx.Registry, b *kit.Button) error {
			clickSlot = b.OnClick
			return nil
		}); err != nil {
			return nil, err
		}

		_, err = g.Listen(clickSlot, cref.AsAny(), func(g *vx.Registry, _ any) {
			var count int
			err := vx.BorrowMut(g, cref, func(g *vx.Registry, c *Counter) error {
				c.count++
				count = c.count
				return vx.BorrowMut(g, c.label, func(g *vx.Registry, l *kit.Label) error {
					return l.SetText(g, fmt.Sprintf("count = %d", count))
				})
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "click listener: %v\n", err)
				return
			}
			if err := g.Update(cref.AsAny(), vx.RepaintNo, vx.PropagateNo); err != nil {
				fmt.Fprintf(os.Stderr, "click listener: %v\n", err)
			}
		})
		if err != nil {
			return nil, err
		}

		return &Counter{btn: btn, label: label}, nil
	}
}

func runCmd() *cobra.Command {
	var (
		clicks      int
		inspectAddr string
		themePath   string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Mount the counter tree and fire clicks",
		RunE: func(cmd *cobra.Command, args []string) error {
			palette := theme.DefaultPalette()
			if themePath != "" {
				var err error
				palette, err = theme.LoadPalette(themePath)
				if err != nil {
					return err
				}
			}
			th := theme.NewFlat(palette)

			g := vx.New()

			var server *inspect.Server
			if inspectAddr != "" {
				hub := inspect.NewHub()
				g.SetObserver(inspect.NewInstrument(inspect.NewMetrics(), hub))
				server = inspect.NewServer(hub)
				go func() {
					if err := server.ListenAndServe(inspectAddr); err != nil {
						fmt.Fprintf(os.Stderr, "inspector: %v\n", err)
					}
				}()
				fmt.Printf("inspector listening on %s\n", inspectAddr)
			}

			root, err := vx.Mount(g, vx.AnyRef{}, newCounter(th))
			if err != nil {
				return err
			}

			var btn kit.ButtonRef
			err = vx.Borrow(g, root, func(_ *vx.Registry, c *Counter) error {
				btn = c.btn
				return nil
			})
			if err != nil {
				return err
			}

			for i := 0; i < clicks; i++ {
				if err := kit.Click(g, btn); err != nil {
					return err
				}
				// Drain repaints as a render loop would.
				g.Frames().TakeDirty()
			}

			err = vx.Borrow(g, root, func(_ *vx.Registry, c *Counter) error {
				fmt.Printf("final count = %d\n", c.count)
				return nil
			})
			if err != nil {
				return err
			}

			if server != nil {
				snap, err := inspect.Snapshot(g)
				if err != nil {
					return err
				}
				server.Publish(snap)
				fmt.Println("press Ctrl-C to exit")
				sig := make(chan os.Signal, 1)
				signal.Notify(sig, os.Interrupt)
				<-sig
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&clicks, "clicks", 1000, "number of clicks to fire")
	cmd.Flags().StringVar(&inspectAddr, "inspect", "", "serve the inspector on this address (e.g. :6061)")
	cmd.Flags().StringVar(&themePath, "theme", "", "path to a YAML palette file")

	return cmd
}
