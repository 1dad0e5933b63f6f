package usecase

import "log"

// Stage is a step of the payment or refund pipeline.
type Stage string

const (
	StageStart       Stage = "start"
	StageValidated   Stage = "validated"
	StageFraudScored Stage = "fraud_scored"
	StageDiscounted  Stage = "discounted"
	StageConverted   Stage = "converted"
	StageBuilt       Stage = "built"
	StageComputed    Stage = "computed"
	StageDispatched  Stage = "dispatched"
	StageNotified    Stage = "notified"
	StageLogged      Stage = "logged"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// pipelineRun tracks the stage of one request. Failed and Done are terminal.
type pipelineRun struct {
	op     string
	userID string
	stage  Stage
	logger *log.Logger
}

func (o *PaymentOrchestrator) newRun(op, userID string) *pipelineRun {
	return &pipelineRun{op: op, userID: userID, stage: StageStart, logger: o.logger}
}

func (r *pipelineRun) advance(next Stage) {
	r.logger.Printf("[payment][usecase] %s stage %s -> %s user_id=%s", r.op, r.stage, next, r.userID)
	r.stage = next
}

func (r *pipelineRun) fail(err error) error {
	r.logger.Printf("[payment][usecase] %s failed at stage=%s user_id=%s err=%v", r.op, r.stage, r.userID, err)
	r.stage = StageFailed
	return err
}
