/*
 * cmd_fchk.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"strings"

	gauss "github.com/rmera/gogauss"
	"github.com/rmera/gogauss/chemjson"
	"github.com/rmera/gogauss/fchk"
	"github.com/rmera/gogauss/qm"
	"github.com/spf13/cobra"
)

func newFchkCommand(g *globals) *cobra.Command {
	var keys string
	var xyz bool
	cmd := &cobra.Command{
		Use:   "fchk [flags] file.fchk",
		Short: "Dump the contents of a formatted checkpoint file",
		Long: `Parse a Gaussian formatted checkpoint file and write its contents as
JSON, a table of selected scalar entries, or the final geometry in XYZ
format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := fchk.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case xyz:
				mol, err := fchk.OptimizedGeometry(rec)
				if err != nil {
					return err
				}
				return gauss.XYZWrite(out, mol)
			case keys != "":
				return qm.PropertyTable(out, rec, strings.Split(keys, ","))
			default:
				return chemjson.EncodeRecord(rec, out)
			}
		},
	}
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "comma-separated entries to show as a table, such as \"Total Energy,Charge\"")
	cmd.Flags().BoolVar(&xyz, "xyz", false, "write the final geometry in XYZ format")
	return cmd
}
