package hooks

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/glorpus-work/hyprtheme/pkg/errors"
)

// ContextModule is the import name under which scripts find their context.
const ContextModule = "context"

// TengoExecutor compiles and runs Tengo hook scripts. Script sources are
// cached by path.
type TengoExecutor struct {
	sources map[string][]byte
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		sources: make(map[string][]byte),
	}
}

// ExecuteFile reads the script at path and runs it.
func (e *TengoExecutor) ExecuteFile(ctx context.Context, path string, hc Context) error {
	src, err := e.source(path)
	if err != nil {
		return err
	}
	return e.Execute(ctx, path, src, hc)
}

// Execute runs src. name is only used in error messages.
func (e *TengoExecutor) Execute(ctx context.Context, name string, src []byte, hc Context) error {
	script := tengo.NewScript(src)

	modules := stdlib.GetModuleMap("fmt", "os", "strings", "text", "times")
	modules.AddBuiltinModule(ContextModule, map[string]tengo.Object{
		"theme_name": &tengo.String{Value: hc.ThemeName},
		"theme_dir":  &tengo.String{Value: hc.ThemeDir},
		"operation":  &tengo.String{Value: string(hc.Operation)},
	})
	script.SetImports(modules)

	for k, v := range hc.Vars {
		if err := script.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", name, errors.ErrHookExecution, err)
	}

	// A script reports failure by defining a non-empty err.
	errVar := compiled.Get("err")
	switch v := errVar.Value().(type) {
	case error:
		return fmt.Errorf("%s: %w: %w", name, errors.ErrHookExecution, v)
	case string:
		if v != "" {
			return fmt.Errorf("%s: %w: %s", name, errors.ErrHookExecution, v)
		}
	}

	return nil
}

func (e *TengoExecutor) source(path string) ([]byte, error) {
	e.mutex.RLock()
	src, ok := e.sources[path]
	e.mutex.RUnlock()
	if ok {
		return src, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO(err, "failed to read hook %s", path)
	}

	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.sources[path] = src
	return src, nil
}
