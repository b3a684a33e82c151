package sns

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct{ inputs []*sns.PublishInput }

func (f *fakePublisher) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sns.PublishOutput{}, nil
}

func TestSendSMS_Transactional(t *testing.T) {
	pub := &fakePublisher{}
	s := &sender{client: pub}

	require.NoError(t, s.SendSMS(context.Background(), "+15550100123", "received"))
	require.Len(t, pub.inputs, 1)
	in := pub.inputs[0]
	assert.Equal(t, "+15550100123", aws.ToString(in.PhoneNumber))
	assert.Equal(t, "received", aws.ToString(in.Message))
	assert.Equal(t, "Transactional", aws.ToString(in.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}

func TestSendSMS_RejectsNonE164(t *testing.T) {
	pub := &fakePublisher{}
	s := &sender{client: pub}

	for _, n := range []string{"555-0100", "15550100123", "+0123456789", ""} {
		assert.Error(t, s.SendSMS(context.Background(), n, "x"), n)
	}
	assert.Empty(t, pub.inputs)
}
