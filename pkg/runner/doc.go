/*
Package runner implements the operator loop around a coffee machine.

It acts as the bridge between the machine and the outside world: each turn it
shows the status and the actions valid for the current state, reads the
operator's choice through a pluggable handler and submits it back.

# Key Components

  - Runner: The loop that drives a Machine until input ends or the context is cancelled.
  - IOHandler: Decouples how frames are shown and choices are read (text, JSON).
  - TextHandler: A numbered menu for interactive CLI usage.
  - JSONHandler: NDJSON frames for scripted hosts.

# Usage

	m, _ := brewer.New()
	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	summary, err := r.Run(ctx, m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(summary.Turns, "actions applied")
*/
package runner
