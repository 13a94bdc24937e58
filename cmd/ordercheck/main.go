// Copyright 2024-2025 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daviszhen/rowcmp/pkg/check"
	"github.com/daviszhen/rowcmp/pkg/scan"
	"github.com/daviszhen/rowcmp/pkg/util"
)

func init() {
	cobra.OnInitialize(loadConfig)
	initCheckCmd()
}

var runCfg = &util.Config{}

///root cmd

var info = "ordercheck"
var RootCmd = &cobra.Command{
	Use:          "ordercheck",
	Short:        info,
	Long:         info,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("use ordercheck --help or -h")
	},
}

//check cmd

var checkInfo = "verify a data file is sorted on its key columns"
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: checkInfo,
	Long:  checkInfo,
	RunE: func(cmd *cobra.Command, args []string) error {
		initCheckCfg()
		return runCheck(runCfg)
	},
}

func initCheckCfg() {
	runCfg.Data.Path = viper.GetString("data.path")
	runCfg.Data.Format = viper.GetString("data.format")
	runCfg.Keys.Columns = viper.GetStringSlice("keys.columns")
	runCfg.Keys.Types = viper.GetString("keys.types")
	runCfg.Keys.NullOrder = viper.GetString("keys.nullOrder")
	runCfg.Debug.PrintRows = viper.GetBool("debug.printRows")
	runCfg.Debug.Concurrency = viper.GetInt("debug.concurrency")
}

func initCheckCmd() {
	RootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&runCfg.Data.Path, "data_path", "", "data file path")
	checkCmd.Flags().StringVar(&runCfg.Data.Format, "data_format", "", "data format. csv, parquet")
	checkCmd.Flags().StringSliceVar(&runCfg.Keys.Columns, "columns", nil, "key column indices, precedence order")
	checkCmd.Flags().StringVar(&runCfg.Keys.Types, "types", "", "key type spec. e.g. 'int varchar:desc'")
	checkCmd.Flags().StringVar(&runCfg.Keys.NullOrder, "null_order", "nulls_first", "nulls_first or nulls_last")

	viper.BindPFlag("data.path", checkCmd.Flags().Lookup("data_path"))
	viper.BindPFlag("data.format", checkCmd.Flags().Lookup("data_format"))
	viper.BindPFlag("keys.columns", checkCmd.Flags().Lookup("columns"))
	viper.BindPFlag("keys.types", checkCmd.Flags().Lookup("types"))
	viper.BindPFlag("keys.nullOrder", checkCmd.Flags().Lookup("null_order"))
}

func runCheck(cfg *util.Config) error {
	colIndice, err := check.ParseColumns(cfg.Keys.Columns)
	if err != nil {
		return err
	}
	typs, orders, err := check.ParseKeyTypes(cfg.Keys.Types)
	if err != nil {
		return err
	}
	if len(typs) != len(colIndice) {
		return fmt.Errorf("%d types for %d key columns", len(typs), len(colIndice))
	}
	nullOrder, err := check.ParseNullOrder(cfg.Keys.NullOrder)
	if err != nil {
		return err
	}

	scanner, err := scan.NewScanner(cfg.Data.Path, cfg.Data.Format, typs, colIndice)
	if err != nil {
		return err
	}
	defer scanner.Close()

	checker := &check.Checker{
		Orders:      orders,
		NullOrder:   nullOrder,
		Concurrency: cfg.Debug.Concurrency,
		PrintRows:   cfg.Debug.PrintRows,
	}
	ret, err := checker.Check(scanner)
	if err != nil {
		return err
	}
	if !ret.Sorted {
		return fmt.Errorf("not sorted at row %d: %s then %s", ret.BadRow, ret.Prev, ret.Cur)
	}
	util.Info("sorted",
		zap.Int("rows", ret.Rows),
		zap.Int("chunks", ret.Chunks))
	return nil
}

var defCfgFilePaths = []string{".", "etc"}
var cfgFileName = "ordercheck.toml"

func loadConfig() {
	for _, dirPath := range defCfgFilePaths {
		fpath := filepath.Join(dirPath, cfgFileName)
		if util.FileIsValid(fpath) {
			viper.SetConfigFile(fpath)
			err := viper.ReadInConfig()
			if err != nil {
				util.Error("viper load config file failed",
					zap.String("fpath", fpath),
					zap.Error(err))
				continue
			}
			break
		}
	}
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
