package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.temporal.io/sdk/client"

	"cookie-delivery-system/codec"
	"cookie-delivery-system/config"
	"cookie-delivery-system/models"
	"cookie-delivery-system/workflows"
)

func main() {
	query := flag.Bool("query", false, "Query workflow state")
	workflowID := flag.String("workflow-id", "", "Workflow ID for query operations")
	exactSlot := flag.Bool("exact-slot", false, "Check availability for the order's exact slot instead of the whole date")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	keyBytes, generated, err := cfg.EncryptionKeyBytes()
	if err != nil {
		log.WithError(err).Fatal("Failed to prepare encryption key")
	}
	if generated {
		log.Warn("Using a generated encryption key. Set ENCRYPTION_KEY to match the worker.")
		log.Warnf("Generated key: %s", hex.EncodeToString(keyBytes))
	}

	dataConverter, err := codec.NewEncryptionDataConverter(keyBytes)
	if err != nil {
		log.WithError(err).Fatal("Failed to create encryption data converter")
	}

	c, err := client.Dial(client.Options{
		HostPort:      cfg.TemporalAddress,
		DataConverter: dataConverter,
	})
	if err != nil {
		log.WithError(err).Fatal("Unable to create Temporal client")
	}
	defer c.Close()

	ctx := context.Background()

	if *query {
		if *workflowID == "" {
			log.Fatal("Workflow ID is required for query operations. Use -workflow-id flag")
		}
		queryWorkflowState(ctx, c, *workflowID)
		return
	}

	startWorkflow(ctx, c, cfg.TaskQueue, *exactSlot)
}

func startWorkflow(ctx context.Context, c client.Client, taskQueue string, exactSlot bool) {
	workflowOptions := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("cookie-delivery-%s", uuid.New().String()),
		TaskQueue: taskQueue,
	}

	log.Infof("Starting delivery workflow: %s", workflowOptions.ID)

	we, err := c.ExecuteWorkflow(ctx, workflowOptions, workflows.DeliveryWorkflow, workflows.DeliveryInput{
		CheckExactSlot: exactSlot,
	})
	if err != nil {
		log.WithError(err).Fatal("Unable to execute workflow")
	}

	log.Infof("WorkflowID: %s", we.GetID())
	log.Infof("RunID: %s", we.GetRunID())
	log.Info("To query workflow state, run:")
	log.Infof("  go run starter/starter.go -query -workflow-id %s", we.GetID())

	log.Info("Waiting for workflow to complete...")
	var result workflows.DeliveryResult
	if err := we.Get(ctx, &result); err != nil {
		log.WithError(err).Fatal("Workflow completed with error")
	}

	switch result.Outcome {
	case workflows.OutcomeNothingToDo:
		log.Info("No pending orders, nothing scheduled")
	default:
		log.Infof("Scheduled delivery for order %s", result.OrderNumber)
		log.Infof("Calendar event: %s", result.EventID)
		log.Infof("Confirmation message: %s", result.MessageID)
		if result.ConflictCount > 0 {
			log.Warnf("Requested date already had %d event(s)", result.ConflictCount)
		}
		if result.StatusDelayed {
			log.Warn("Order status write buffered, it will apply once the streaming buffer settles")
		}
	}
}

func queryWorkflowState(ctx context.Context, c client.Client, workflowID string) {
	log.Infof("Querying workflow state: %s", workflowID)

	resp, err := c.QueryWorkflow(ctx, workflowID, "", workflows.QueryState)
	if err != nil {
		log.WithError(err).Fatal("Failed to query workflow")
	}

	var state models.WorkflowState
	if err := resp.Get(&state); err != nil {
		log.WithError(err).Fatal("Failed to decode query result")
	}

	stateJSON, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Failed to marshal state")
	}

	log.Info("Workflow state:")
	fmt.Println(string(stateJSON))
}
