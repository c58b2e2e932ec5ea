package sempconfig

import (
	"context"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// ObjectClass describes one configurable broker object type: where its
// collection lives, which attribute is its natural key, and what a freshly
// created instance looks like before desired settings are applied.
type ObjectClass struct {
	Name        string
	KeyField    string
	Defaults    map[string]any
	ScopeParams []string
	Collection  func(scope map[string]string) string
}

// Reconciler converges one broker object to a DesiredState with at most one
// mutating SEMP call per invocation. With DryRun set it reports what would
// change without issuing the mutating call.
type Reconciler struct {
	Client *SEMPClient
	Logger hclog.Logger
	DryRun bool
}

// Reconcile reads the current collection, looks up the object by its natural
// key, and issues the one create, update, or delete call needed to reach the
// desired state. A missing scope parameter fails with *ConfigError before any
// network call; HTTP failures surface as *TransportError.
func (r *Reconciler) Reconcile(ctx context.Context, class *ObjectClass, desired DesiredState, scope map[string]string) (Outcome, error) {
	if desired.Name == "" {
		return Outcome{}, &ConfigError{Param: "name", Reason: "must not be empty"}
	}
	switch desired.Lifecycle {
	case StatePresent, StateAbsent:
	default:
		return Outcome{}, &ConfigError{Param: "state", Reason: fmt.Sprintf("must be %q or %q, got %q", StatePresent, StateAbsent, desired.Lifecycle)}
	}
	for _, param := range class.ScopeParams {
		if scope[param] == "" {
			return Outcome{}, &ConfigError{Param: param, Reason: fmt.Sprintf("required for %s objects", class.Name)}
		}
	}

	collection := class.Collection(scope)

	records, err := r.Client.GetCollection(ctx, collection)
	if err != nil {
		return Outcome{}, err
	}

	exists := false
	for _, record := range records {
		if key, ok := record[class.KeyField].(string); ok && key == desired.Name {
			exists = true
			break
		}
	}

	logger := r.logger().With("object", class.Name, "name", desired.Name)

	switch {
	case !exists && desired.Lifecycle == StatePresent:
		data := mergeSettings(class.Defaults, map[string]any{class.KeyField: desired.Name}, desired.Settings)
		if r.DryRun {
			logger.Info("would create")
			return Outcome{Changed: true}, nil
		}
		logger.Debug("creating")
		resp, err := r.Client.Post(ctx, collection, data)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true, Response: resp}, nil

	case exists && desired.Lifecycle == StatePresent:
		if len(desired.Settings) == 0 {
			logger.Debug("exists, no settings to apply")
			return Outcome{}, nil
		}
		if r.DryRun {
			logger.Info("would update")
			return Outcome{Changed: true}, nil
		}
		logger.Debug("updating")
		resp, err := r.Client.Patch(ctx, collection+"/"+url.PathEscape(desired.Name), desired.Settings)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true, Response: resp}, nil

	case exists && desired.Lifecycle == StateAbsent:
		if r.DryRun {
			logger.Info("would delete")
			return Outcome{Changed: true}, nil
		}
		logger.Debug("deleting")
		resp, err := r.Client.Delete(ctx, collection+"/"+url.PathEscape(desired.Name))
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true, Response: resp}, nil

	default:
		logger.Debug("already absent")
		return Outcome{}, nil
	}
}

func (r *Reconciler) logger() hclog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return hclog.NewNullLogger()
}

// mergeSettings builds the body of a create call. Overrides beat defaults,
// mandatory fields always win.
func mergeSettings(defaults, mandatory, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(mandatory)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	for k, v := range mandatory {
		merged[k] = v
	}
	return merged
}
