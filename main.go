// 命令行入口：
// - 读取可选的 settings.yaml，命令行参数覆盖其中的路径
// - 默认子命令执行完整构建，check 仅做规则校验
// - 只有这里决定退出码：任何错误打印 "error: ..." 到 stderr 并以 1 退出
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"go-personal-sites/internal/build"
	"go-personal-sites/internal/config"
	"go-personal-sites/internal/logx"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	config string
	data   string
	out    string
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "pwd",
		Short:         "Generate the personal websites directory (index.html and pwd.opml)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			res, err := build.New(cfg).Run(cmd.Context())
			if err != nil {
				return err
			}
			logx.Infof("构建完成：条目=%d 订阅=%d 文件=%d", res.Entries, res.Feeds, len(res.Written))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "settings.yaml", "path to settings.yaml (optional)")
	root.PersistentFlags().StringVar(&opts.data, "data", "", "entries data file (overrides DATA)")
	root.PersistentFlags().StringVarP(&opts.out, "out", "o", "", "output directory (overrides OUT_DIR)")

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate entries without writing any output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			list, err := build.New(cfg).Check()
			if err != nil {
				return err
			}
			logx.Infof("校验通过：%d 条", len(list))
			return nil
		},
	})
	return root
}

// loadConfig 读取配置；未显式指定 --config 且默认文件不存在时使用默认值。
func loadConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.config)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("config") {
			return nil, err
		}
		cfg = config.Default()
	}
	if opts.data != "" {
		cfg.Data = opts.data
	}
	if opts.out != "" {
		cfg.OutDir = opts.out
	}
	logx.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogLocale, cfg.LogColor)
	return cfg, nil
}
