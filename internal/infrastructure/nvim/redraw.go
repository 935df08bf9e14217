package nvim

const redrawOptionSet = "option_set"

// OptionSets collects the option_set events of one redraw batch. Each update
// is [event-name, args...] and each option_set args tuple is [name, value].
// Returns nil when the batch carries no option changes.
func OptionSets(updates [][]any) map[string]any {
	var options map[string]any

	for _, update := range updates {
		if len(update) == 0 {
			continue
		}
		if name, ok := update[0].(string); !ok || name != redrawOptionSet {
			continue
		}

		for _, raw := range update[1:] {
			args, ok := raw.([]any)
			if !ok || len(args) < 2 {
				continue
			}
			key, ok := args[0].(string)
			if !ok {
				continue
			}
			if options == nil {
				options = make(map[string]any)
			}
			options[key] = args[1]
		}
	}

	return options
}
