package chrsheet

import (
	"context"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	romExt   = ".nes"
	sheetExt = ".png"

	scanWorkers = 10
)

var errWalkCancelled = errors.New("walk cancelled")

func sheetPath(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + sheetExt
}

func exists(file string) (bool, error) {
	switch _, err := os.Stat(file); {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

func (c *ChrSheet) findROMs(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		err := filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), romExt) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errWalkCancelled
			}

			return nil
		})
		// A worker failed and reports its own error
		if err == errWalkCancelled {
			err = nil
		}
		errc <- err
	}()
	return out, errc, nil
}

func (c *ChrSheet) scanFile(file string) error {
	output := sheetPath(file)

	b, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}

	if c.db != nil {
		e, err := c.db.FindByCRC(crcROM(b))
		if err != nil {
			return err
		}
		if e != nil && e.Sheet == output {
			ok, err := exists(output)
			if err != nil {
				return err
			}
			if ok {
				c.logger.Printf("Skipping \"%s\", already catalogued with CRC \"%s\"\n", file, e.CRC)
				return nil
			}
		}
	}

	r, err := c.extractTo(file, b, output)
	switch {
	case errors.Is(err, ErrNoGraphics):
		c.logger.Printf("Skipping \"%s\", no tile graphics\n", file)
		return nil
	case err != nil:
		return err
	}

	if c.db == nil {
		return nil
	}

	return c.db.Add(Entry{
		CRC:           r.CRC,
		Name:          strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
		ProgramUnits:  r.Header.ProgramUnits,
		GraphicsUnits: r.Header.GraphicsUnits,
		Tiles:         r.Tiles,
		Sheet:         output,
	})
}

func (c *ChrSheet) romWorker(cancel context.CancelFunc, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			if err := c.scanFile(file); err != nil {
				errc <- err
				cancel()
				// Drain so the walker is never left blocked
				for range in {
				}
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	var first error
	for err := range errc {
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path and writes a sprite sheet next to every iNES image found,
// replacing the extension with .png. If a catalog is configured, ROMs that
// are already catalogued and whose sheet still exists are skipped.
func (c *ChrSheet) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	roms, errc, err := c.findROMs(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := c.romWorker(cancelFunc, roms)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
