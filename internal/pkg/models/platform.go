package models

// PlatformInstructions holds the per-platform help text shown to influencers
// when delivering content. Pure lookup data, one variant per platform.
type PlatformInstructions struct {
	Platform      Platform `json:"platform"`
	Title         string   `json:"title"`
	URLHint       string   `json:"url_hint"`
	DeliverySteps []string `json:"delivery_steps"`
}

var platformInstructions = map[Platform]PlatformInstructions{
	PlatformInstagram: {
		Platform: PlatformInstagram,
		Title:    "Publish on Instagram",
		URLHint:  "https://instagram.com/p/...",
		DeliverySteps: []string{
			"Publish the post or reel on your profile",
			"Copy the post link from the share menu",
			"Confirm each campaign requirement in the checklist",
			"Paste the link and submit for validation",
		},
	},
	PlatformYouTube: {
		Platform: PlatformYouTube,
		Title:    "Publish on YouTube",
		URLHint:  "https://youtube.com/watch?v=...",
		DeliverySteps: []string{
			"Upload the video as public or unlisted per the campaign brief",
			"Copy the watch URL from the address bar",
			"Confirm each campaign requirement in the checklist",
			"Paste the link and submit for validation",
		},
	},
	PlatformTikTok: {
		Platform: PlatformTikTok,
		Title:    "Publish on TikTok",
		URLHint:  "https://tiktok.com/@user/video/...",
		DeliverySteps: []string{
			"Publish the video on your profile",
			"Copy the video link from the share menu",
			"Confirm each campaign requirement in the checklist",
			"Paste the link and submit for validation",
		},
	},
}

// InstructionsFor returns the delivery instructions for a platform. Unknown
// platforms fall back to the Instagram variant so the projection always has
// next-action text.
func InstructionsFor(p Platform) PlatformInstructions {
	if instr, ok := platformInstructions[p]; ok {
		return instr
	}
	return platformInstructions[PlatformInstagram]
}
