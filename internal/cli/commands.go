package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tychoish/slist"
)

func valueArg(args []string, idx int, name string) (int64, error) {
	v, err := cast.ToInt64E(args[idx])
	return v, errors.Wrapf(err, "parse %s %q", name, args[idx])
}

func indexArg(args []string, idx int) (int, error) {
	v, err := cast.ToIntE(args[idx])
	return v, errors.Wrapf(err, "parse index %q", args[idx])
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "print the list",
		Args:  cobra.NoArgs,
		RunE: a.apply("show", func(*slist.List[int64], []string) (any, error) {
			return nil, nil
		}),
	}
}

type summary struct {
	Len    int  `json:"len"`
	Sorted bool `json:"sorted"`
}

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "print the length of the list and whether it is sorted",
		Args:  cobra.NoArgs,
		RunE: a.apply("info", func(list *slist.List[int64], _ []string) (any, error) {
			if err := list.Validate(); err != nil {
				return nil, err
			}
			return summary{Len: list.Len(), Sorted: slist.IsSorted(list)}, nil
		}),
	}
}

func (a *app) sortCommand() *cobra.Command {
	var descending bool
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "sort the list in place",
		Args:  cobra.NoArgs,
		RunE: a.apply("sort", func(list *slist.List[int64], _ []string) (any, error) {
			return nil, slist.Sort(list, descending)
		}),
	}
	cmd.Flags().BoolVarP(&descending, "desc", "d", false, "sort in descending order")
	return cmd
}

type halves struct {
	First  *slist.List[int64] `json:"first"`
	Second *slist.List[int64] `json:"second"`
}

func (a *app) splitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split",
		Short: "print the two halves of the list",
		Args:  cobra.NoArgs,
		RunE: a.apply("split", func(list *slist.List[int64], _ []string) (any, error) {
			out := halves{First: &slist.List[int64]{}, Second: &slist.List[int64]{}}
			if err := list.Split(out.First, out.Second); err != nil {
				return nil, err
			}
			return out, nil
		}),
	}
}

func (a *app) mergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FIRST SECOND",
		Short: "print the concatenation of two lists",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.flush()
			if args[0] == stdinPath && args[1] == stdinPath {
				return ErrRepeatedStdin
			}

			first, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			second, err := a.load(cmd, args[1])
			if err != nil {
				return err
			}

			out := &slist.List[int64]{}
			if err = out.Merge(first, second); err != nil {
				return errors.Wrap(err, "merge")
			}
			return emit(cmd, out)
		},
	}
}

func (a *app) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search VALUE",
		Short: "report whether the list contains the value",
		Args:  cobra.ExactArgs(1),
		RunE: a.apply("search", func(list *slist.List[int64], args []string) (any, error) {
			v, err := valueArg(args, 0, "value")
			if err != nil {
				return nil, err
			}
			return list.Search(v), nil
		}),
	}
}

func (a *app) locateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate VALUE",
		Short: "print the index of the first element equal to the value, or -1",
		Args:  cobra.ExactArgs(1),
		RunE: a.apply("locate", func(list *slist.List[int64], args []string) (any, error) {
			v, err := valueArg(args, 0, "value")
			if err != nil {
				return nil, err
			}
			return list.Locate(v), nil
		}),
	}
}

func (a *app) pushCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "push-front VALUE",
			Short: "add a value to the front of the list",
			Args:  cobra.ExactArgs(1),
			RunE: a.apply("push-front", func(list *slist.List[int64], args []string) (any, error) {
				v, err := valueArg(args, 0, "value")
				if err != nil {
					return nil, err
				}
				list.PushFront(v)
				return nil, nil
			}),
		},
		{
			Use:   "push-back VALUE",
			Short: "add a value to the end of the list",
			Args:  cobra.ExactArgs(1),
			RunE: a.apply("push-back", func(list *slist.List[int64], args []string) (any, error) {
				v, err := valueArg(args, 0, "value")
				if err != nil {
					return nil, err
				}
				list.PushBack(v)
				return nil, nil
			}),
		},
		{
			Use:   "push-at INDEX VALUE",
			Short: "insert a value so that it ends up at the index",
			Args:  cobra.ExactArgs(2),
			RunE: a.apply("push-at", func(list *slist.List[int64], args []string) (any, error) {
				idx, err := indexArg(args, 0)
				if err != nil {
					return nil, err
				}
				v, err := valueArg(args, 1, "value")
				if err != nil {
					return nil, err
				}
				return nil, list.PushAt(idx, v)
			}),
		},
		{
			Use:   "push-after ANCHOR VALUE",
			Short: "insert a value after the first element equal to the anchor",
			Args:  cobra.ExactArgs(2),
			RunE: a.apply("push-after", func(list *slist.List[int64], args []string) (any, error) {
				anchor, v, err := anchorArgs(args)
				if err != nil {
					return nil, err
				}
				return nil, list.PushAfter(anchor, v)
			}),
		},
		{
			Use:   "push-before ANCHOR VALUE",
			Short: "insert a value before the first element equal to the anchor",
			Args:  cobra.ExactArgs(2),
			RunE: a.apply("push-before", func(list *slist.List[int64], args []string) (any, error) {
				anchor, v, err := anchorArgs(args)
				if err != nil {
					return nil, err
				}
				return nil, list.PushBefore(anchor, v)
			}),
		},
	}
}

func anchorArgs(args []string) (anchor, value int64, err error) {
	if anchor, err = valueArg(args, 0, "anchor"); err != nil {
		return 0, 0, err
	}
	if value, err = valueArg(args, 1, "value"); err != nil {
		return 0, 0, err
	}
	return anchor, value, nil
}

// the pop commands print the removed value.
func (a *app) popCommands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "pop-front",
			Short: "remove the first element",
			Args:  cobra.NoArgs,
			RunE: a.apply("pop-front", func(list *slist.List[int64], _ []string) (any, error) {
				return list.PopFront()
			}),
		},
		{
			Use:   "pop-back",
			Short: "remove the last element",
			Args:  cobra.NoArgs,
			RunE: a.apply("pop-back", func(list *slist.List[int64], _ []string) (any, error) {
				return list.PopBack()
			}),
		},
		{
			Use:   "pop-at INDEX",
			Short: "remove the element at the index",
			Args:  cobra.ExactArgs(1),
			RunE: a.apply("pop-at", func(list *slist.List[int64], args []string) (any, error) {
				idx, err := indexArg(args, 0)
				if err != nil {
					return nil, err
				}
				return list.PopAt(idx)
			}),
		},
	}
}
