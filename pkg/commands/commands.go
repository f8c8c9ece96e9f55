package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/rajatvarna/PromptDB/pkg/app"
	"github.com/rajatvarna/PromptDB/pkg/commands/options"
	"github.com/rajatvarna/PromptDB/pkg/store"
)

var (
	output = &options.OutputOptions{}

	// One service per process so a shell session shares history stacks
	// across commands.
	svc    *app.Service
	svcCfg store.Config
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "promptdb",
		Short: base.Wrap80("A prompt library for equity research, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addUndo(topLevel)
	addFav(topLevel)
	addRate(topLevel)
	addRun(topLevel)
	addVersions(topLevel)
	addWatch(topLevel)
	addShell(topLevel)
	addTemplates(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// newService loads config and the durable store and assembles the
// session state. Repeat calls in one process return the same service.
func newService() (*app.Service, store.Config, error) {
	if svc != nil {
		return svc, svcCfg, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, svcCfg = app.New(p, cfg), cfg
	return svc, svcCfg, nil
}
