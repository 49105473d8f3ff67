// check_assets 检查资源目录：解析资源清单并实际解码每个资源
//
// 用法：
//
//	go run ./cmd/check_assets -dir assets
//
// 任一资源缺失或无法解码时以状态码 1 退出。
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/decker502/roguelike/pkg/app"
	"github.com/decker502/roguelike/pkg/game"
	"github.com/decker502/roguelike/pkg/logging"
)

func main() {
	dir := flag.String("dir", "assets", "资源目录")
	verbose := flag.Bool("verbose", false, "输出 Debug 级别日志")
	flag.Parse()

	logging.Configure(os.Stderr, *verbose)

	if err := check(os.DirFS(*dir)); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func check(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, app.ResourceConfigPath)
	if err != nil {
		return err
	}
	cfg, err := game.ParseResourceConfig(data)
	if err != nil {
		return err
	}

	rm := game.NewResourceManager(fsys, game.FontLoader{}, game.ImageLoader{})
	if err := rm.LoadResourceConfig(app.ResourceConfigPath); err != nil {
		return err
	}

	groups := make([]string, 0, len(cfg.Groups))
	for name := range cfg.Groups {
		groups = append(groups, name)
	}
	slices.Sort(groups)

	for _, name := range groups {
		if _, _, err := rm.LoadGroup(name); err != nil {
			return err
		}
	}
	rm.Wait()

	for _, name := range groups {
		fmt.Printf("[%s]\n", name)
		for _, entry := range cfg.Groups[name].Entries() {
			id, err := rm.LoadByID(entry.ID)
			if err != nil {
				return err
			}
			state, _ := rm.LoadState(id)
			fmt.Printf("  %-16s %-8s %s\n", entry.ID, state, rm.Path(id))
		}
	}

	progress := rm.Progress()
	fmt.Printf("%d/%d loaded\n", progress.Loaded, progress.Total)

	if failures := rm.Failures(); len(failures) > 0 {
		for _, failure := range failures {
			fmt.Printf("- %v\n", failure.Err)
		}
		return fmt.Errorf("%d assets failed to load", len(failures))
	}
	return nil
}
