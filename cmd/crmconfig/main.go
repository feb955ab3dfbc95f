// crmconfig es la CLI del motor de configuración: resuelve configuraciones
// por código NAICS, lista sectores y plantillas, y muestra los módulos
// registrados. Salida en JSON para componer con otras herramientas.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/jhoicas/crm-core/internal/application/configuration"
	appmodules "github.com/jhoicas/crm-core/internal/application/modules"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/internal/infrastructure/overrides"
	"github.com/jhoicas/crm-core/internal/modules/construction"
	"github.com/jhoicas/crm-core/pkg/config"
	"github.com/jhoicas/crm-core/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuración
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	// 2. Logger
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	// 3. Registros del motor
	configRegistry := appconfig.NewRegistry()
	moduleRegistry := appmodules.NewRegistry(log)

	for _, m := range construction.All(log) {
		if err := moduleRegistry.Register(m); err != nil {
			return fmt.Errorf("registrar módulos de construcción: %w", err)
		}
	}

	// 4. Overrides opcionales desde disco
	if cfg.Overrides.Dir != "" {
		loader := overrides.NewLoader(configRegistry, log)
		if _, err := loader.LoadDir(cfg.Overrides.Dir); err != nil {
			return err
		}
	}

	root := newRootCmd(configRegistry, moduleRegistry)
	return root.Execute()
}

func newRootCmd(configs *appconfig.Registry, mods *appmodules.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:           "crmconfig",
		Short:         "Motor de configuración CRM por industria",
		Long:          "Resuelve la configuración CRM (pipelines, campos, actividades, módulos) para una clasificación industrial o plantilla.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newResolveCmd(configs),
		newPreviewCmd(configs),
		newSectorsCmd(configs),
		newTemplatesCmd(configs),
		newModulesCmd(mods),
	)
	return root
}

func newResolveCmd(configs *appconfig.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <naics-code>",
		Short: "Resuelve la configuración fusionada para un código NAICS",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !configs.IsValidNAICS(code) {
				return fmt.Errorf("código NAICS inválido: %q (se esperan 2 a 6 dígitos)", code)
			}
			return printJSON(cmd, configs.GetConfiguration(code))
		},
	}
}

func newPreviewCmd(configs *appconfig.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <template> [naics-code]",
		Short: "Resumen de onboarding para una plantilla de industria",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			template := entity.IndustryTemplate(args[0])
			code := ""
			if len(args) == 2 {
				code = args[1]
			}
			return printJSON(cmd, configs.PreviewConfiguration(template, code))
		},
	}
}

func newSectorsCmd(configs *appconfig.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "Lista los sectores NAICS con su plantilla por defecto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, configs.GetAllSectors())
		},
	}
}

func newTemplatesCmd(configs *appconfig.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Lista las plantillas de industria disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, configs.GetAvailableTemplates())
		},
	}
}

func newModulesCmd(mods *appmodules.Registry) *cobra.Command {
	var naicsCode string
	var template string

	cmd := &cobra.Command{
		Use:   "modules",
		Short: "Lista los módulos registrados, opcionalmente filtrados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var defs []entity.ModuleDefinition
			switch {
			case naicsCode != "":
				defs = mods.ModulesForNAICS(naicsCode)
			case template != "":
				defs = mods.ModulesForTemplate(entity.IndustryTemplate(template))
			default:
				defs = mods.AllModules()
			}
			return printJSON(cmd, defs)
		},
	}

	cmd.Flags().StringVar(&naicsCode, "naics", "", "filtrar por código NAICS")
	cmd.Flags().StringVar(&template, "template", "", "filtrar por plantilla de industria")
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar salida: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
