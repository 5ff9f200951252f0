package subcmd

import (
	"encoding/json"
	"fmt"
	"os"

	pb "github.com/but80/euterpe/pb/euterpe"
	"github.com/but80/euterpe/setting"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var dumpFormats = []string{"text", "json", "yaml", "protobuf", "msgpack"}

var Dump = cli.Command{
	Name:    "dump",
	Aliases: []string{"d"},
	Usage:   "Dumps the derived schema tables",
	Flags: withCommonFlags(
		cli.StringFlag{
			Name:  "format, f",
			Usage: `Output format (text|json|yaml|protobuf|msgpack)`,
			Value: "text",
		},
		cli.StringFlag{
			Name:  "input, i",
			Usage: `Converts a protobuf snapshot instead of deriving the tables`,
		},
		cli.BoolFlag{
			Name:  "setting-only, s",
			Usage: `Dumps the setting as a YAML file usable with --setting`,
		},
	),
	Action: func(ctx *cli.Context) error {
		s, err := prepare(ctx)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		var b []byte
		switch {
		case ctx.Bool("setting-only"):
			b, err = setting.Marshal(s.Setting())
		case ctx.String("input") != "":
			var table pb.SchemaTable
			if err := table.LoadFile(ctx.String("input")); err != nil {
				return cli.NewExitError(err, 1)
			}
			b, err = render(&table, ctx.String("format"))
		default:
			b, err = render(s.ToPB(), ctx.String("format"))
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		os.Stdout.Write(b)
		return nil
	},
}

func render(table *pb.SchemaTable, format string) ([]byte, error) {
	switch format {
	case "text":
		return []byte(proto.MarshalTextString(table)), nil
	case "json":
		b, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return append(b, '\n'), nil
	case "yaml":
		b, err := yaml.Marshal(table)
		return b, errors.WithStack(err)
	case "protobuf":
		b, err := proto.Marshal(table)
		return b, errors.WithStack(err)
	case "msgpack":
		b, err := msgpack.Marshal(table)
		return b, errors.WithStack(err)
	}
	return nil, fmt.Errorf("Unknown format %q (one of %v)", format, dumpFormats)
}
