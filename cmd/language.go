package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"codeclean/internal/languages"

	"github.com/spf13/cobra"
)

// newLanguageCmd 创建 language 子命令。
// 命令用于展示当前已注册的语言、对应文件后缀和注释标记。
func newLanguageCmd(registry *languages.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "language",
		Short: "展示已注册语言、后缀及注释标记",
		RunE: func(cmd *cobra.Command, _ []string) error {
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if _, err := fmt.Fprintln(writer, "LANGUAGE\tEXTENSIONS\tMARKERS"); err != nil {
				return err
			}

			for _, item := range registry.Languages() {
				if _, err := fmt.Fprintf(
					writer,
					"%s\t%s\t%s\n",
					item.Name,
					strings.Join(item.Extensions, ", "),
					strings.Join(item.Markers, ", "),
				); err != nil {
					return err
				}
			}

			return writer.Flush()
		},
	}
}
