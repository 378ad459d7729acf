package main

import (
	"os"

	"github.com/k0kishima/riichi-mahjong/analyzer/app"
	"github.com/k0kishima/riichi-mahjong/common/config"
	"github.com/k0kishima/riichi-mahjong/common/log"
	"github.com/spf13/cobra"
)

// 加载配置 -> 初始化日志 -> 执行子命令

var (
	configFile  string
	format      string
	watchConfig bool
	opts        app.Options
	analyzer    *app.App
)

var rootCmd = &cobra.Command{
	Use:           "analyzer",
	Short:         "analyzer 立直麻将手牌分析",
	Long:          `analyzer 立直麻将手牌分析：拆解、向听数、听牌、役判定`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(configFile); err != nil {
			return err
		}
		cfg := config.Current()
		if err := log.InitLog(cfg.AppName, cfg.Log.Level, cfg.Log.Path); err != nil {
			return err
		}
		log.Debug("配置文件: %+v", cfg)

		a, err := app.New(cfg)
		if err != nil {
			return err
		}
		analyzer = a

		if watchConfig && configFile != "" {
			err := config.Watch(func(cfg config.AnalyzerConfiguration, err error) {
				if err != nil {
					log.Warn("配置重新加载失败，沿用旧配置: %v", err)
					return
				}
				analyzer.Reload(cfg)
			})
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if analyzer != nil {
			analyzer.Close()
		}
		_ = log.Close()
	},
}

var shantenCmd = &cobra.Command{
	Use:   "shanten <hand>",
	Short: "13 张手牌的向听数",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyzer.Shanten(args[0], opts)
		if err != nil {
			return err
		}
		return analyzer.Write(cmd.OutOrStdout(), report, format)
	},
}

var decomposeCmd = &cobra.Command{
	Use:   "decompose <hand> [winning]",
	Short: "14 张手牌的全部和了拆解",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winning := ""
		if len(args) > 1 {
			winning = args[1]
		}
		report, err := analyzer.Decompose(args[0], winning)
		if err != nil {
			return err
		}
		return analyzer.Write(cmd.OutOrStdout(), report, format)
	},
}

var yakuCmd = &cobra.Command{
	Use:   "yaku <hand> [winning]",
	Short: "和了手牌的役，省略和了牌时取最后一张",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		winning := ""
		if len(args) > 1 {
			winning = args[1]
		}
		report, err := analyzer.Yaku(args[0], winning, opts)
		if err != nil {
			return err
		}
		return analyzer.Write(cmd.OutOrStdout(), report, format)
	},
}

var waitsCmd = &cobra.Command{
	Use:   "waits <hand>",
	Short: "13 张手牌的听牌与进张数",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := analyzer.Waits(args[0])
		if err != nil {
			return err
		}
		return analyzer.Write(cmd.OutOrStdout(), report, format)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "逐行批量评估，省略文件时读取标准输入",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		results, err := analyzer.RunBatch(cmd.Context(), in, opts)
		if err != nil {
			return err
		}
		log.Info("批量评估完成，共 %d 行", len(results))
		return analyzer.Write(cmd.OutOrStdout(), results, format)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "resource file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: json | yaml")
	rootCmd.PersistentFlags().BoolVar(&watchConfig, "watch", false, "reload config file on change")
	rootCmd.PersistentFlags().BoolVar(&opts.NoSevenPairs, "no-seven-pairs", false, "exclude seven pairs from shanten")
	rootCmd.PersistentFlags().BoolVar(&opts.NoThirteenOrphans, "no-kokushi", false, "exclude thirteen orphans from shanten")

	for _, c := range []*cobra.Command{yakuCmd, batchCmd} {
		c.Flags().StringVar(&opts.RoundWind, "round", "", "round wind: east | south | west | north")
		c.Flags().StringVar(&opts.SeatWind, "seat", "", "seat wind: east | south | west | north")
		c.Flags().BoolVar(&opts.SelfDraw, "tsumo", false, "won by self-draw")
	}

	rootCmd.AddCommand(shantenCmd, decomposeCmd, yakuCmd, waitsCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("发生异常: %v", err)
		_ = log.Close()
		os.Exit(1)
	}
}
