// Package recommend maps a (mood, stressor) pair to a coping tip and an
// activity suggestion.
//
// Both functions are total: any mood is placed in a band (see models.Band)
// and stressors without a dedicated rule fall through to the band default.
package recommend

import "github.com/dmitrijs2005/mindful/internal/client/models"

const (
	tipHighExams         = "You're in a great mindset! Use this energy to organize your study notes or help a classmate."
	tipHighAssignments   = "Momentum is on your side. Tackle the hardest part of your assignment now while you feel good."
	tipHighWork          = "Productivity is high! Knock out your tasks so you can enjoy your free time later."
	tipHighRelationships = "Share your positivity! It's a great time to reach out to someone you care about."
	tipHighDefault       = "You're doing great! Keep building on this positive momentum and enjoy your day."

	tipNeutral = "You're holding steady. A moment of mindfulness now can help keep you balanced."

	tipLowExams         = "Stop and breathe. You are more than your grades. Take a 10-minute break to reset."
	tipLowAssignments   = "Overwhelmed? Don't look at the whole mountain. Just write one sentence right now."
	tipLowMoney         = "Financial stress is heavy. Remind yourself this situation is temporary and focus on today."
	tipLowRelationships = "Conflict hurts. It's okay to step back. Protect your peace and set boundaries if you need to."
	tipLowHealth        = "Listen to your body. Rest is productive. Treat yourself with kindness today."
	tipLowWork          = "Leave work at work. Your mental health is more important than that deadline."
	tipLowDefault       = "It's a tough day. Be gentle with yourself and take things one small step at a time."
)

const (
	activityHigh    = "High Energy: Go for a run, hit the gym, try a new creative hobby, or meet up with friends!"
	activityNeutral = "Maintenance: Take a brisk 20-minute walk outside, tidy your room, or listen to a favorite podcast."

	activityDeskBreak  = "Desk Break: Stand up, stretch your arms overhead, and do 10 slow neck rolls to release tension."
	activityGrounding  = "Grounding: Hold an ice cube in your hand or splash cold water on your face to reset your nervous system."
	activityRelease    = "Release: Try progressive muscle relaxation. Tense shoulders for 5s, then release. Repeat for hands and legs."
	activityGentleFlow = "Gentle Flow: Do 5 minutes of slow yoga stretches or lie in 'Child's Pose' to rest your body."
	activityComfort    = "Comfort: Wrap yourself in a blanket, drink warm tea, or step outside for fresh air."
)

// Tip returns the coping message for the pair.
func Tip(mood models.Mood, stressor models.Stressor) string {
	switch mood.Band() {
	case models.BandHigh:
		switch stressor {
		case models.StressorExams:
			return tipHighExams
		case models.StressorAssignments:
			return tipHighAssignments
		case models.StressorWork:
			return tipHighWork
		case models.StressorRelationships, models.StressorFamily:
			return tipHighRelationships
		default:
			return tipHighDefault
		}
	case models.BandNeutral:
		return tipNeutral
	}

	switch stressor {
	case models.StressorExams:
		return tipLowExams
	case models.StressorAssignments:
		return tipLowAssignments
	case models.StressorMoney:
		return tipLowMoney
	case models.StressorRelationships, models.StressorFamily:
		return tipLowRelationships
	case models.StressorHealth:
		return tipLowHealth
	case models.StressorWork:
		return tipLowWork
	default:
		return tipLowDefault
	}
}

// Activity returns the suggested physical or grounding activity for the pair.
func Activity(mood models.Mood, stressor models.Stressor) string {
	switch mood.Band() {
	case models.BandHigh:
		return activityHigh
	case models.BandNeutral:
		return activityNeutral
	}

	switch stressor {
	case models.StressorExams, models.StressorAssignments, models.StressorWork:
		return activityDeskBreak
	case models.StressorMoney, models.StressorOther:
		return activityGrounding
	case models.StressorFamily, models.StressorRelationships:
		return activityRelease
	case models.StressorHealth:
		return activityGentleFlow
	default:
		return activityComfort
	}
}
