package notify

import (
	"fmt"
	"time"
)

func otpBody(code string, validFor time.Duration) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; line-height: 1.6; background-color: #f9f9f9; color: #333;">
		<h2 style="color: #4CAF50;">Email Verification</h2>
		<p>Hello,</p>
		<p>Thank you for starting your registration on <strong>Task Tracker</strong>.</p>
		<p>Your OTP is:</p>
		<div style="font-size: 24px; font-weight: bold; color: #000; margin: 10px 0;">%s</div>
		<p>This code is valid for <strong>%d minutes</strong>.</p>
		<p>Please complete your registration using this OTP. If you did not initiate this request, you can safely ignore this email.</p>
		<hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
		<p style="font-size: 14px; color: #555;">Need help? Contact us at support@tasktracker.com</p>
	</div>`, code, int(validFor.Minutes()))
}

func welcomeBody(name string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; line-height: 1.6;">
		<h2 style="color: #4CAF50;">Hi %s,</h2>
		<p>Welcome to <strong>Task Tracker</strong>!</p>
		<p>We're thrilled to have you on board. You can now create, manage, and track your tasks more efficiently than ever before.</p>
		<p>Start by creating your first project or exploring the dashboard.</p>
		<hr style="border: none; border-top: 1px solid #ddd;">
		<p style="font-size: 14px; color: #555;">If you have any questions, feel free to reply to this email. We're always here to help!</p>
		<p style="margin-top: 30px;">Cheers,<br>The Task Tracker Team</p>
	</div>`, name)
}

func projectCreatedBody(name, title string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #eef9f1; border-radius: 10px;">
		<h2 style="color: #2e7d32;">Hi %s,</h2>
		<p>Your new project <strong>"%s"</strong> has been created successfully in <strong>Task Tracker</strong>.</p>
		<p>You can now start adding tasks and tracking progress.</p>
		<p style="margin-top: 30px; font-size: 12px; color: #777;">If this wasn't you, please contact support.</p>
	</div>`, name, title)
}

func projectUpdatedBody(name, title string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #fffbe6; border-radius: 10px;">
		<h2 style="color: #e69138;">Hello %s,</h2>
		<p>Your project <strong>"%s"</strong> has been successfully updated.</p>
		<p style="margin-top: 30px; font-size: 12px; color: #777;">If you didn't perform this update, please contact our support team immediately.</p>
	</div>`, name, title)
}

func projectDeletedBody(name, title string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #ffeaea; border-radius: 10px;">
		<h2 style="color: #cc0000;">Hi %s,</h2>
		<p>The project <strong>"%s"</strong> has been permanently deleted from your workspace.</p>
		<p>If you didn't perform this action, please reach out to support immediately.</p>
		<p style="margin-top: 30px; font-size: 12px; color: #777;">This is an automated message from Task Tracker System.</p>
	</div>`, name, title)
}

func projectCompletedBody(name, title string) string {
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #e6ffe6; border-radius: 10px;">
		<h2 style="color: #2e7d32;">Hi %s,</h2>
		<p>Congratulations! Your project <strong>"%s"</strong> has been marked as <strong>completed</strong>.</p>
		<p>Thank you for using Task Tracker. Keep up the great work!</p>
		<p style="margin-top: 30px; font-size: 12px; color: #777;">This is an automated message from Task Tracker System.</p>
	</div>`, name, title)
}
