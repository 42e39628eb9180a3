package mail

const otpTemplate = `
<h2>Verification Code</h2>
<p>Use this code to finish signing in:</p>
<p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">{{.Code}}</p>
<p>The code expires in {{.Minutes}} minutes. If you did not request it, you can ignore this email.</p>
`

const receiptTemplate = `
<h2>Parking Receipt</h2>
<p>Thank you for using our parking service!</p>
<div style="margin: 20px 0;">
  <p><strong>Ticket Number:</strong> {{.TicketNumber}}</p>
  <p><strong>Vehicle:</strong> {{.PlateNumber}}{{if .Vehicle}} ({{.Vehicle}}){{end}}</p>
  <p><strong>Parking Slot:</strong> {{.ParkingCode}}</p>
  <p><strong>Entry Time:</strong> {{.EntryTime.Format "2006-01-02 15:04:05"}}</p>
  <p><strong>Exit Time:</strong> {{.ExitTime.Format "2006-01-02 15:04:05"}}</p>
  <p><strong>Duration:</strong> {{.Duration}}</p>
  <p><strong>Rate:</strong> {{printf "%.2f" .FeePerHour}} RWF/hour</p>
  <p><strong>Total Amount:</strong> {{printf "%.2f" .Amount}} RWF</p>
</div>
<p>Please keep this receipt for your records.</p>
`
