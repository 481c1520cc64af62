package jsonfile

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jhoicas/cre-directory/pkg/logger"
)

// Reloader recibe el aviso de que los datos cambiaron.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher observa el directorio de datos y dispara Reload cuando cambia
// products.json o categories.json. Las ráfagas de escritura se agrupan en una sola recarga.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	target   Reloader
	log      *logger.Logger
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
	reloads  int
}

// NewWatcher crea el watcher; debounce <= 0 usa 500ms.
func NewWatcher(dir string, target Reloader, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{
		watcher:  fw,
		dir:      dir,
		target:   target,
		log:      log.Component("watcher"),
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start registra el directorio y lanza el bucle de eventos. No bloquea.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	w.log.Info().Str("dir", w.dir).Msg("observando directorio de datos")
	go w.run(ctx)
	return nil
}

// Stop detiene el bucle, espera su salida y libera el watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.log.Error().Err(err).Msg("error cerrando watcher")
	}
	w.log.Info().Msg("watcher detenido")
}

// Reloads cantidad de recargas disparadas.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("cambio detectado")
			pending = true
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("error del watcher")
		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			w.mu.Lock()
			w.reloads++
			w.mu.Unlock()
			if err := w.target.Reload(ctx); err != nil {
				w.log.Warn().Err(err).Msg("recarga por cambio de archivos fallida")
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	switch filepath.Base(event.Name) {
	case ProductsFile, CategoriesFile:
		return true
	}
	return false
}
