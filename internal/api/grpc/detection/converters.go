package detection

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
)

// toDomainActor converts a protobuf SystemActor to a domain Actor.
func toDomainActor(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

// toDomainSettings converts wire settings (seconds as doubles) into the
// domain model. Zero fields stay zero so the patch semantics survive.
func toDomainSettings(settings *pb.DetectionSettings) domain.Settings {
	if settings == nil {
		return domain.Settings{}
	}

	return domain.Settings{
		EARThreshold:  settings.GetEarThreshold(),
		MARThreshold:  settings.GetMarThreshold(),
		DrowsyTime:    secondsToDuration(settings.GetDrowsyTimeSeconds()),
		YawnTime:      secondsToDuration(settings.GetYawnTimeSeconds()),
		AlertCooldown: secondsToDuration(settings.GetAlertCooldownSeconds()),
	}
}

// toProtoSettings converts domain settings into their wire form.
func toProtoSettings(settings domain.Settings) *pb.DetectionSettings {
	return &pb.DetectionSettings{
		EarThreshold:         settings.EARThreshold,
		MarThreshold:         settings.MARThreshold,
		DrowsyTimeSeconds:    settings.DrowsyTime.Seconds(),
		YawnTimeSeconds:      settings.YawnTime.Seconds(),
		AlertCooldownSeconds: settings.AlertCooldown.Seconds(),
	}
}

// toDomainFrame converts a wire frame into the domain model.
func toDomainFrame(frame *pb.LandmarkFrame) *domain.Frame {
	if frame == nil {
		return &domain.Frame{}
	}

	landmarks := make(domain.LandmarkSet, 0, len(frame.GetLandmarks()))
	for _, point := range frame.GetLandmarks() {
		landmarks = append(landmarks, domain.Point{
			X: point.GetX(),
			Y: point.GetY(),
		})
	}

	var capturedAt time.Time
	if ts := frame.GetCapturedAt(); ts != nil {
		capturedAt = ts.AsTime()
	}

	var faceBox *domain.FaceBox
	if box := frame.GetFaceBox(); box != nil {
		faceBox = &domain.FaceBox{
			X:      box.GetX(),
			Y:      box.GetY(),
			Width:  box.GetWidth(),
			Height: box.GetHeight(),
		}
	}

	return &domain.Frame{
		FaceDetected:  frame.GetFaceDetected(),
		Landmarks:     landmarks,
		CapturedAt:    capturedAt,
		Blendshapes:   toScoreMap(frame.GetBlendshapes()),
		EmotionScores: toScoreMap(frame.GetEmotionScores()),
		Face:          faceBox,
	}
}

// toScoreMap flattens repeated named scores into a lookup map.
func toScoreMap(scores []*pb.BlendshapeScore) map[string]float64 {
	if len(scores) == 0 {
		return nil
	}

	result := make(map[string]float64, len(scores))
	for _, score := range scores {
		result[score.GetName()] = score.GetScore()
	}

	return result
}

// toProtoEvent converts a domain event into its wire form.
func toProtoEvent(event domain.Event) *pb.DetectionEvent {
	return &pb.DetectionEvent{
		SessionId:         event.SessionID,
		Type:              string(event.Type),
		OccurredAt:        timestamppb.New(event.Timestamp),
		MetricValue:       event.MetricValue,
		EmotionLabel:      event.EmotionLabel,
		EmotionConfidence: event.EmotionConfidence,
	}
}

// toProtoStats converts domain stats into their wire form.
func toProtoStats(stats *domain.Stats) *pb.SessionStats {
	if stats == nil {
		return &pb.SessionStats{}
	}

	var startedAt, endedAt *timestamppb.Timestamp

	if !stats.StartedAt.IsZero() {
		startedAt = timestamppb.New(stats.StartedAt)
	}

	if !stats.EndedAt.IsZero() {
		endedAt = timestamppb.New(stats.EndedAt)
	}

	return &pb.SessionStats{
		SessionId:         stats.SessionID,
		Backend:           stats.Backend,
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		FramesProcessed:   stats.FramesProcessed,
		FramesWithoutFace: stats.FramesWithoutFace,
		DrowsyEvents:      stats.DrowsyEvents,
		YawnEvents:        stats.YawnEvents,
	}
}

// secondsToDuration converts a wire duration in seconds to time.Duration.
func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
