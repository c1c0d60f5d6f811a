package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sensorfactory/nexus/internal/app"
	"github.com/sensorfactory/nexus/internal/config"
	"github.com/sensorfactory/nexus/internal/domain"
	"github.com/sensorfactory/nexus/internal/latency"
	"github.com/sensorfactory/nexus/internal/notify"
	"github.com/sensorfactory/nexus/internal/service/fleet"
	"github.com/sensorfactory/nexus/internal/session"
)

const (
	exitOK    = 0
	exitErr   = 1
	exitUsage = 2
)

var errNotLoggedIn = errors.New("not logged in, run: sensorctl login -u <user> -p <password>")

type command struct {
	name  string
	usage string
	// public commands run without a stored session.
	public bool
	run    func(ctx context.Context, env *env, args []string) error
}

var commands = []command{
	{name: "login", usage: "login -u <user> -p <password>", public: true, run: cmdLogin},
	{name: "logout", usage: "logout", public: true, run: cmdLogout},
	{name: "whoami", usage: "whoami", run: cmdWhoami},
	{name: "sensors", usage: "sensors [-search text] [-type type]", run: cmdSensors},
	{name: "fleet", usage: "fleet [-search text] [-status status]", run: cmdFleet},
	{name: "clients", usage: "clients [-search text]", run: cmdClients},
	{name: "orders", usage: "orders [-status status] [-client id]", run: cmdOrders},
	{name: "alerts", usage: "alerts [-all]", run: cmdAlerts},
	{name: "dashboard", usage: "dashboard", run: cmdDashboard},
	{name: "export", usage: "export -what sensors|orders -out file.xlsx", run: cmdExport},
}

// env is what every command works with.
type env struct {
	backend *app.Backend
	gate    *session.Gate
	out     io.Writer
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stderr)
		return exitUsage
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(stderr, "sensorctl: unknown command %q\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	backend, err := app.NewBackend(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "sensorctl: %v\n", err)
		return exitErr
	}
	defer backend.Close()

	e := &env{
		backend: backend,
		gate:    session.NewGate(logger, backend.Auth, session.NewFileStorage(cfg.Session.Path), latency.New(cfg.Latency)),
		out:     stdout,
	}

	if !cmd.public && !e.gate.IsAuthenticated(ctx) {
		fmt.Fprintf(stderr, "sensorctl: %v\n", errNotLoggedIn)
		return exitErr
	}

	err = cmd.run(ctx, e, args[1:])
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "sensorctl: %v\nusage: sensorctl %s\n", err, cmd.usage)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "sensorctl: %v\n", err)
		return exitErr
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: sensorctl <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(w, "  %s\n", c.usage)
	}
}

type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if fs.NArg() > 0 {
		return usageError{fmt.Errorf("unexpected argument %q", fs.Arg(0))}
	}
	return nil
}

func cmdLogin(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	user := fs.String("u", "", "username")
	pass := fs.String("p", os.Getenv("SENSORCTL_PASSWORD"), "password (default $SENSORCTL_PASSWORD)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *user == "" {
		return usageError{errors.New("-u is required")}
	}

	s, err := e.gate.Login(ctx, *user, *pass)
	if errors.Is(err, domain.ErrUnauthorized) {
		return printFeedback(e, err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Logged in as %s (%s)\n", s.Name, s.Role)
	return nil
}

func cmdLogout(ctx context.Context, e *env, args []string) error {
	if err := parseFlags(flag.NewFlagSet("logout", flag.ContinueOnError), args); err != nil {
		return err
	}
	if err := e.gate.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Logged out")
	return nil
}

func cmdWhoami(ctx context.Context, e *env, args []string) error {
	if err := parseFlags(flag.NewFlagSet("whoami", flag.ContinueOnError), args); err != nil {
		return err
	}
	s, ok := e.gate.CurrentUser(ctx)
	if !ok {
		return errNotLoggedIn
	}
	fmt.Fprintf(e.out, "%s\t%s\t%s\t%s\n", s.Username, s.Name, s.Role, s.Email)
	return nil
}

func cmdSensors(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("sensors", flag.ContinueOnError)
	search := fs.String("search", "", "text over name and description")
	typ := fs.String("type", domain.FilterAll, "sensor type")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	sensors, err := e.backend.Inventory.ListSensors(ctx, domain.SensorFilter{Search: *search, Type: *typ})
	if err != nil {
		return err
	}
	return table(e.out, []string{"ID", "NAME", "TYPE", "PRICE", "STOCK", "UPDATED"}, len(sensors), func(i int) []string {
		s := sensors[i]
		return []string{s.ID, s.Name, s.Type.String(), fmt.Sprintf("%.2f", s.Price), fmt.Sprint(s.Stock), s.LastUpdated.String()}
	})
}

func cmdFleet(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("fleet", flag.ContinueOnError)
	search := fs.String("search", "", "text over id, location and client")
	status := fs.String("status", domain.FilterAll, "sensor status")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	sensors, err := e.backend.Fleet.ListDeployed(ctx, domain.DeployedSensorFilter{Search: *search, Status: *status})
	if err != nil {
		return err
	}
	return table(e.out, []string{"ID", "STATUS", "LOCATION", "CLIENT", "LAST SEEN", "ERRORS"}, len(sensors), func(i int) []string {
		d := sensors[i]
		return []string{d.ID, d.Status.String(), d.Location, d.Client, d.LastCommunication.Format("2006-01-02 15:04"), fmt.Sprint(d.HasErrors())}
	})
}

func cmdClients(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	search := fs.String("search", "", "text over name, contact and email")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	clients, err := e.backend.Clients.ListClients(ctx, domain.ClientFilter{Search: *search})
	if err != nil {
		return err
	}
	return table(e.out, []string{"ID", "NAME", "CONTACT", "EMAIL", "PHONE"}, len(clients), func(i int) []string {
		c := clients[i]
		return []string{c.ID, c.Name, c.Contact, c.Email, c.Phone}
	})
}

func cmdOrders(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	status := fs.String("status", domain.FilterAll, "order status")
	clientID := fs.String("client", "", "client id")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	orders, err := e.backend.Sales.ListOrderDetails(ctx, domain.OrderFilter{Status: *status, ClientID: *clientID})
	if err != nil {
		return err
	}
	return table(e.out, []string{"ID", "DATE", "CLIENT", "STATUS", "ITEMS", "TOTAL"}, len(orders), func(i int) []string {
		o := orders[i]
		client := o.ClientName
		if client == "" {
			client = o.ClientID
		}
		return []string{o.ID, o.Date.String(), client, o.Status.String(), fmt.Sprint(len(o.Items)), fmt.Sprintf("%.2f", o.Total)}
	})
}

func cmdAlerts(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("alerts", flag.ContinueOnError)
	all := fs.Bool("all", false, "include resolved alerts")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	alerts, err := e.backend.Fleet.ListAlerts(ctx, fleet.AlertFilter{IncludeResolved: *all})
	if err != nil {
		return err
	}
	return table(e.out, []string{"ID", "SENSOR", "TYPE", "DATE", "RESOLVED", "MESSAGE"}, len(alerts), func(i int) []string {
		a := alerts[i]
		return []string{a.ID, a.SensorID, a.Type.String(), a.Date.Format("2006-01-02 15:04"), fmt.Sprint(a.Resolved), a.Message}
	})
}

func cmdDashboard(ctx context.Context, e *env, args []string) error {
	if err := parseFlags(flag.NewFlagSet("dashboard", flag.ContinueOnError), args); err != nil {
		return err
	}

	d, err := e.backend.Dashboard.Summary(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Inventory units\t%d\n", d.InventoryUnits)
	fmt.Fprintf(tw, "Active orders\t%d\n", d.ActiveOrders)
	fmt.Fprintf(tw, "Clients\t%d\n", d.ClientCount)
	fmt.Fprintf(tw, "Revenue (%s)\t%.2f (%+.1f%%)\n", d.LatestMonth, d.LatestRevenue, d.RevenueChange)
	for _, p := range d.TopProducts {
		fmt.Fprintf(tw, "Top seller\t%s (%d units)\n", p.Name, p.Units)
	}
	for _, a := range d.RecentAlerts {
		fmt.Fprintf(tw, "Alert\t%s %s: %s\n", a.SensorID, a.Type, a.Message)
	}
	return tw.Flush()
}

func cmdExport(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	what := fs.String("what", "", "sensors or orders")
	out := fs.String("out", "", "output .xlsx file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *out == "" {
		return usageError{errors.New("-out is required")}
	}

	var (
		data []byte
		err  error
	)
	switch *what {
	case "sensors":
		data, err = e.backend.Inventory.ExportSensors(ctx, domain.SensorFilter{})
	case "orders":
		data, err = e.backend.Sales.ExportOrders(ctx, domain.OrderFilter{})
	default:
		return usageError{fmt.Errorf("-what must be sensors or orders, got %q", *what)}
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(e.out, "Wrote %s (%d bytes)\n", *out, len(data))
	return nil
}

// printFeedback surfaces the latest notification for a failed operation.
func printFeedback(e *env, err error) error {
	if n := e.backend.Feed.Recent(1); len(n) == 1 && n[0].Variant == notify.VariantDestructive {
		return fmt.Errorf("%s: %s", n[0].Title, n[0].Description)
	}
	return err
}

func table(w io.Writer, header []string, n int, row func(i int) []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i := 0; i < n; i++ {
		fmt.Fprintln(tw, strings.Join(row(i), "\t"))
	}
	return tw.Flush()
}
