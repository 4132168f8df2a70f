package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newDefinitionsCommand(opts *rootOptions) *cobra.Command {
	var (
		nameLike, key string
		latest        bool
		limit         int
	)
	cmd := &cobra.Command{
		Use:   "definitions",
		Short: "List process definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := opts.engine.Repository().CreateProcessDefinitionQuery()
			if nameLike != "" {
				q.ProcessDefinitionNameLike(nameLike)
			}
			if key != "" {
				q.ProcessDefinitionKey(key)
			}
			if latest {
				q.LatestVersion()
			}
			if len(opts.tenants) > 0 {
				q.TenantIDIn(opts.tenants...)
			}
			defs, err := q.OrderByProcessDefinitionKey().Asc().ListPage(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			tbl := table{header: []string{"ID", "Key", "Name", "Version", "Tenant"}}
			for _, d := range defs {
				tbl.rows = append(tbl.rows, []string{d.ID(), d.Key(), d.Name(), strconv.Itoa(d.Version()), d.TenantID()})
			}
			return opts.print(cmd.OutOrStdout(), defs, tbl)
		},
	}
	cmd.Flags().StringVar(&nameLike, "name-like", "", "name pattern, % matches any characters")
	cmd.Flags().StringVar(&key, "key", "", "process definition key")
	cmd.Flags().BoolVar(&latest, "latest", false, "only the latest version of each key")
	cmd.Flags().IntVar(&limit, "max", 100, "maximum number of results")
	return cmd
}

func newTasksCommand(opts *rootOptions) *cobra.Command {
	var (
		assignee, candidateGroup string
		limit                    int
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List open user tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := opts.engine.Tasks().CreateTaskQuery()
			if assignee != "" {
				q.TaskAssignee(assignee)
			}
			if candidateGroup != "" {
				q.TaskCandidateGroup(candidateGroup)
			}
			if len(opts.tenants) > 0 {
				q.TenantIDIn(opts.tenants...)
			}
			tasks, err := q.OrderByTaskCreateTime().Desc().ListPage(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			tbl := table{header: []string{"ID", "Name", "Assignee", "Priority", "Created"}}
			for _, t := range tasks {
				tbl.rows = append(tbl.rows, []string{
					t.ID(), t.Name(), t.Assignee(), strconv.Itoa(t.Priority()), formatTime(t.CreateTime()),
				})
			}
			return opts.print(cmd.OutOrStdout(), tasks, tbl)
		},
	}
	cmd.Flags().StringVar(&assignee, "assignee", "", "user the task is assigned to")
	cmd.Flags().StringVar(&candidateGroup, "candidate-group", "", "group that may claim the task")
	cmd.Flags().IntVar(&limit, "max", 100, "maximum number of results")
	return cmd
}

func newIncidentsCommand(opts *rootOptions) *cobra.Command {
	var (
		processInstance, incidentType string
		limit                         int
	)
	cmd := &cobra.Command{
		Use:   "incidents",
		Short: "List open incidents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := opts.engine.Runtime().CreateIncidentQuery()
			if processInstance != "" {
				q.ProcessInstanceID(processInstance)
			}
			if incidentType != "" {
				q.IncidentType(incidentType)
			}
			if len(opts.tenants) > 0 {
				q.TenantIDIn(opts.tenants...)
			}
			incidents, err := q.OrderByIncidentTimestamp().Desc().ListPage(cmd.Context(), 0, limit)
			if err != nil {
				return err
			}

			tbl := table{header: []string{"ID", "Type", "Process Instance", "Activity", "Message"}}
			for _, i := range incidents {
				tbl.rows = append(tbl.rows, []string{
					i.ID(), i.IncidentType(), i.ProcessInstanceID(), i.ActivityID(), i.IncidentMessage(),
				})
			}
			return opts.print(cmd.OutOrStdout(), incidents, tbl)
		},
	}
	cmd.Flags().StringVar(&processInstance, "process-instance", "", "process instance id")
	cmd.Flags().StringVar(&incidentType, "type", "", "incident type, e.g. failedJob")
	cmd.Flags().IntVar(&limit, "max", 100, "maximum number of results")
	return cmd
}

func newInstancesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "Process instance queries",
	}
	cmd.AddCommand(newInstancesCountCommand(opts))
	return cmd
}

func newInstancesCountCommand(opts *rootOptions) *cobra.Command {
	var (
		key, businessKey string
		activeOnly       bool
	)
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count running process instances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q := opts.engine.Runtime().CreateProcessInstanceQuery()
			if key != "" {
				q.ProcessDefinitionKey(key)
			}
			if businessKey != "" {
				q.ProcessInstanceBusinessKey(businessKey)
			}
			if activeOnly {
				q.Active()
			}
			if len(opts.tenants) > 0 {
				q.TenantIDIn(opts.tenants...)
			}
			n, err := q.Count(cmd.Context())
			if err != nil {
				return err
			}

			tbl := table{header: []string{"Count"}, rows: [][]string{{strconv.FormatInt(n, 10)}}}
			return opts.print(cmd.OutOrStdout(), map[string]int64{"count": n}, tbl)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "process definition key")
	cmd.Flags().StringVar(&businessKey, "business-key", "", "business key")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "skip suspended instances")
	return cmd
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show engine summary counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := opts.engine.Stats(cmd.Context(), opts.tenants...)
			if err != nil {
				return err
			}

			tbl := table{
				header: []string{"Metric", "Value"},
				rows: [][]string{
					{"process definitions", strconv.FormatInt(stats.ProcessDefinitions, 10)},
					{"active process instances", strconv.FormatInt(stats.ActiveProcessInstances, 10)},
					{"open tasks", strconv.FormatInt(stats.OpenTasks, 10)},
					{"open incidents", strconv.FormatInt(stats.OpenIncidents, 10)},
					{"external tasks", strconv.FormatInt(stats.ExternalTasks, 10)},
				},
			}
			return opts.print(cmd.OutOrStdout(), stats, tbl)
		},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
