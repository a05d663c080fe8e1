//go:build e2e && unix

package e2e

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSwitchDictionary(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	_, err = tf.CreateDictionary("english", "apple", "a round fruit")
	require.NoError(t, err)
	_, err = tf.CreateDictionary("french", "pomme", "un fruit rond")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-d", tf.DictionaryDir()), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("a round fruit"), "Should start on the first dictionary")

	tf.NextDictionary()
	require.True(t, tf.SeePlain("un fruit rond"), "Should show the second dictionary")

	tf.NextDictionary()
	require.NoError(t, tf.WaitForE(func(s string) bool {
		plain := ansiRe.ReplaceAllString(s, "")
		return strings.LastIndex(plain, "a round fruit") > strings.LastIndex(plain, "un fruit rond")
	}, 3*time.Second, "Should wrap around to the first dictionary"))

	tf.Quit()
}

func TestSwitchToBrokenDictionaryIsRefused(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	_, err = tf.CreateDictionary("english", "apple", "a round fruit")
	require.NoError(t, err)
	_, err = tf.CreateCorruptDictionary("zz-broken")
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-d", tf.DictionaryDir()), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.NextDictionary()
	if !tf.WaitForStatusMessage("cannot switch dictionary", 3*time.Second) {
		tf.DumpTailOnFail(t, "broken-switch", 4096)
		t.Fatal("Should report the refused switch")
	}

	// the previous dictionary is still usable
	tf.TypeText("app")
	tf.Enter()
	require.True(t, tf.SeePlain("a round fruit"))

	tf.Quit()
}
