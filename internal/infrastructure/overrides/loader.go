// Package overrides carga configuraciones parciales de industria desde
// archivos YAML en disco y las registra en el Registry de configuración.
//
// Convención de archivos: cada *.yaml del directorio define un override.
// El código NAICS al que aplica se toma del campo `code` del archivo; si
// está ausente, del nombre del archivo sin extensión (p.ej. 238160.yaml).
// Códigos de 2 dígitos se registran como sector, de 3-6 como industria.
package overrides

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/crm-core/internal/application/configuration"
	"github.com/jhoicas/crm-core/internal/domain"
	"github.com/jhoicas/crm-core/internal/domain/entity"
	"github.com/jhoicas/crm-core/pkg/logger"
	"github.com/jhoicas/crm-core/pkg/naics"
)

// overrideFile es el esquema YAML de un override en disco.
type overrideFile struct {
	Code   string                       `yaml:"code"`
	Config entity.IndustryConfiguration `yaml:"config"`
}

// Loader lee overrides YAML y los registra en un Registry.
type Loader struct {
	registry *configuration.Registry
	log      *logger.Logger
}

// NewLoader construye un loader sobre el registry dado.
func NewLoader(registry *configuration.Registry, log *logger.Logger) *Loader {
	return &Loader{registry: registry, log: log}
}

// LoadDir carga todos los *.yaml y *.yml del directorio. Archivos inválidos
// (YAML malformado o código NAICS inválido) se omiten con warning; devuelve
// la cantidad de overrides registrados. Un directorio inexistente es error.
func (l *Loader) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("leer directorio de overrides %q: %w", dir, err)
	}

	loaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		if err := l.LoadFile(path); err != nil {
			l.log.Warn().Err(err).Str("file", path).Msg("override omitido")
			continue
		}
		loaded++
	}

	l.log.Info().Int("loaded", loaded).Str("dir", dir).Msg("overrides de industria cargados")
	return loaded, nil
}

// LoadFile carga y registra un único override YAML.
func (l *Loader) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer override %q: %w", path, err)
	}

	var f overrideFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsear override %q: %w", path, err)
	}

	code := naics.Normalize(f.Code)
	if code == "" {
		// Sin código declarado: usar el nombre del archivo.
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		code = naics.Normalize(base)
	}
	if !naics.IsValid(code) {
		return fmt.Errorf("override %q: código %q: %w", path, f.Code, domain.ErrInvalidNAICS)
	}

	if naics.GetLevel(code) == naics.LevelSector {
		l.registry.RegisterSectorConfig(code, f.Config)
	} else {
		l.registry.RegisterIndustryConfig(code, f.Config)
	}

	l.warnOnDuplicateInitialStages(code)

	l.log.Debug().Str("code", code).Str("file", path).Msg("override registrado")
	return nil
}

// warnOnDuplicateInitialStages resuelve la configuración del código recién
// registrado y avisa si algún pipeline quedó con más de una etapa inicial.
// El merge no lo impide (contrato heredado); el warning lo hace visible.
func (l *Loader) warnOnDuplicateInitialStages(code string) {
	merged := l.registry.GetConfiguration(code)
	for _, p := range merged.Pipelines {
		initial := 0
		for _, s := range p.Stages {
			if s.IsInitial {
				initial++
			}
		}
		if initial > 1 {
			l.log.Warn().
				Str("code", code).
				Str("pipeline", p.Name).
				Int("initialStages", initial).
				Msg("el pipeline fusionado tiene más de una etapa inicial")
		}
	}
}
